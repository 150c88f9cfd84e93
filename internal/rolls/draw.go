package rolls

import (
	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/random"
)

// drawColor picks one chip from the 49/49/2 deck
func drawColor(intn random.Intn) (domain.Color, error) {
	chip, err := intn(domain.RedChips + domain.BlueChips + domain.GreenChips)
	if err != nil {
		return "", err
	}
	switch {
	case chip < domain.RedChips:
		return domain.ColorRed, nil
	case chip < domain.RedChips+domain.BlueChips:
		return domain.ColorBlue, nil
	default:
		return domain.ColorGreen, nil
	}
}
