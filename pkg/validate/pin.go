package validate

import (
	"fmt"
	"regexp"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

func Pin(pin string) error {
	if !pinPattern.MatchString(pin) {
		return fmt.Errorf("%w: PIN must be exactly 4 digits", domain.ErrInvalidInput)
	}
	return nil
}

// CardNumber strips the separators users commonly type and returns the bare digits.
func CardNumber(raw string) (string, error) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == ' ' || c == '-':
		default:
			return "", fmt.Errorf("%w: card number must contain only digits", domain.ErrInvalidInput)
		}
	}
	if len(digits) == 0 {
		return "", fmt.Errorf("%w: card number is required", domain.ErrInvalidInput)
	}
	return string(digits), nil
}
