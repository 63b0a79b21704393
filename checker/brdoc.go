package checker

// Check digit reduction shared by CPF and CNPJ: the weighted sum is taken
// mod 11; a remainder below 2 yields digit 0, anything else yields 11 minus
// the remainder.
func mod11Digit(sum int) int {
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

// CPF validates a Brazilian individual taxpayer number. Formatting characters
// are stripped first; the result must be exactly 11 digits, must not be a
// run of one repeated digit, and both check digits must match the mod-11
// weighted sums over the preceding digits.
func CPF(value string) bool {
	doc := digits(value)
	if len(doc) != 11 || allSame(doc) {
		return false
	}

	// First check digit: weights 10 down to 2 over the first nine digits.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(doc[i]-'0') * (10 - i)
	}
	if mod11Digit(sum) != int(doc[9]-'0') {
		return false
	}

	// Second check digit: weights 11 down to 2 over the first ten digits.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(doc[i]-'0') * (11 - i)
	}
	return mod11Digit(sum) == int(doc[10]-'0')
}

var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJ validates a Brazilian corporate taxpayer number: 14 digits after
// stripping, not all repeated, with both mod-11 check digits matching the
// fixed weight vectors.
func CNPJ(value string) bool {
	doc := digits(value)
	if len(doc) != 14 || allSame(doc) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeightsFirst {
		sum += int(doc[i]-'0') * w
	}
	if mod11Digit(sum) != int(doc[12]-'0') {
		return false
	}

	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(doc[i]-'0') * w
	}
	return mod11Digit(sum) == int(doc[13]-'0')
}

// CEP validates a Brazilian postal code: exactly 8 digits after stripping
// formatting.
func CEP(value string) bool {
	return len(digits(value)) == 8
}

// Phone validates a Brazilian phone number: 10 digits (landline) or 11
// digits (mobile) after stripping formatting.
func Phone(value string) bool {
	n := len(digits(value))
	return n == 10 || n == 11
}
