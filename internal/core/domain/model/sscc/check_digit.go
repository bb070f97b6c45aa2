package sscc

import (
	"fmt"

	"shipnotice/internal/pkg/errs"
)

// CheckDigit computes the GS1 weighted mod-10 check digit over the
// concatenation extension ∥ prefix ∥ serial.
//
// Scanning the concatenated digit string from the rightmost digit leftward,
// alternating digits are multiplied by 3 and 1 (rightmost weighted 3), the
// products are summed, and the check digit is (10 − sum mod 10) mod 10.
//
// Example: CheckDigit("0", "0614141", "123456789") returns "0".
func CheckDigit(extension, prefix, serial string) (string, error) {
	digits := extension + prefix + serial

	total := 0
	for i := range digits {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return "", errs.NewValueIsInvalidErrorWithCause("check digit input",
				fmt.Errorf("%q is not a digit string", digits))
		}

		weight := 1
		if i%2 == 0 {
			weight = 3
		}
		total += int(c-'0') * weight
	}

	check := (10 - total%10) % 10
	return fmt.Sprintf("%d", check), nil
}
