package munition

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
)

// Descriptor requests one munition variant of a base record.
type Descriptor struct {
	// Name is the fragment spliced into names and keys. Empty uses the tag label.
	Name        string
	WeightRatio float64
	Tag         Tag
	Tech        *TechInfo
	Source      string
	// Multiplier replaces the tag's table entry for this descriptor only.
	Multiplier *Multiplier
}

// Validate checks that the descriptor can be applied to any base record.
func (d Descriptor) Validate() error {
	if d.Tag == "" {
		return invalidDescriptor(d, "tag is required")
	}
	if !d.Tag.Known() {
		return invalidDescriptor(d, fmt.Sprintf("unknown tag %q", d.Tag))
	}
	if math.IsNaN(d.WeightRatio) || math.IsInf(d.WeightRatio, 0) || d.WeightRatio <= 0 {
		return invalidDescriptor(d, fmt.Sprintf("weight ratio %v must be positive", d.WeightRatio))
	}
	if d.label() == "" {
		return invalidDescriptor(d, "name is required")
	}
	return nil
}

func (d Descriptor) label() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return d.Tag.Label()
}

// slug turns the label into a key segment: "Armor-Piercing" -> "ArmorPiercing".
func (d Descriptor) slug() string {
	fields := strings.FieldsFunc(d.label(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, field := range fields {
		runes := []rune(field)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

func (d Descriptor) multiplier() Multiplier {
	if d.Multiplier != nil {
		return *d.Multiplier
	}
	return MultiplierFor(d.Tag)
}

func invalidDescriptor(d Descriptor, reason string) error {
	return &apperrors.Error{
		Code:     apperrors.CodeInvalidDescriptor,
		Message:  fmt.Sprintf("descriptor %q: %s", d.Name, reason),
		Metadata: map[string]string{"Name": d.Name, "Reason": reason},
	}
}
