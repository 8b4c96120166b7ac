package munition

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
)

const ammoKeySuffix = "-Ammo"
const ammoNameSuffix = " Ammo"

type derivedNames struct {
	Name      string
	ShortName string
	Key       string
}

// nameTemplate builds the derived names from a base record and the
// descriptor's label and key slug.
type nameTemplate func(base Record, label, slug string) (derivedNames, error)

var nameTemplates = map[Category]nameTemplate{
	CategoryAutocannon:      ballisticNames,
	CategoryLightAutocannon: ballisticNames,
	CategoryRotaryAC:        ballisticNames,
	CategoryLBX:             ballisticNames,
	CategoryLBXTHB:          ballisticNames,
	CategoryUltraAC:         ballisticNames,
	CategoryUltraACTHB:      ballisticNames,

	CategoryLRM:       missileNames,
	CategorySRM:       missileNames,
	CategoryStreakSRM: missileNames,
	CategoryMRM:       missileNames,
	CategoryMML:       missileNames,
	CategoryATM:       missileNames,

	CategoryArrowIV: artilleryNames,
	CategoryThumper: artilleryNames,
	CategorySniper:  artilleryNames,
	CategoryLongTom: artilleryNames,

	CategoryMekMortar: areaMunitionNames,
}

// Derivable reports whether c has a naming rule.
func Derivable(c Category) bool {
	_, ok := nameTemplates[c]
	return ok
}

// "AC/10 Ammo", "IS-AC10-Ammo" -> "Precision AC/10 Ammo", "IS-AC10-Precision-Ammo"
func ballisticNames(base Record, label, slug string) (derivedNames, error) {
	if !strings.HasSuffix(base.Key, ammoKeySuffix) {
		return derivedNames{}, malformed(base, "key", fmt.Sprintf("want suffix %q", ammoKeySuffix))
	}
	return derivedNames{
		Name:      label + " " + base.Name,
		ShortName: base.ShortName + " " + label,
		Key:       strings.TrimSuffix(base.Key, ammoKeySuffix) + "-" + slug + ammoKeySuffix,
	}, nil
}

// "LRM 10 Ammo", "IS-Ammo-LRM-10" -> "LRM 10 Ammo (Thunder)", "IS-Ammo-LRM-Thunder-10"
func missileNames(base Record, label, slug string) (derivedNames, error) {
	key, err := spliceBeforeSize(base, slug)
	if err != nil {
		return derivedNames{}, err
	}
	return derivedNames{
		Name:      base.Name + " (" + label + ")",
		ShortName: base.ShortName + " " + label,
		Key:       key,
	}, nil
}

// "Arrow IV Ammo", "IS-Ammo-ArrowIV" -> "Arrow IV Cluster Ammo", "IS-Ammo-ArrowIV-Cluster"
func artilleryNames(base Record, label, slug string) (derivedNames, error) {
	if !strings.HasSuffix(base.Name, ammoNameSuffix) {
		return derivedNames{}, malformed(base, "name", fmt.Sprintf("want suffix %q", ammoNameSuffix))
	}
	if strings.TrimSpace(base.Key) == "" {
		return derivedNames{}, malformed(base, "key", "empty")
	}
	return derivedNames{
		Name:      strings.TrimSuffix(base.Name, ammoNameSuffix) + " " + label + ammoNameSuffix,
		ShortName: base.ShortName + " " + label,
		Key:       base.Key + "-" + slug,
	}, nil
}

// "Mortar/4 Ammo", "IS-Ammo-Mortar-4" -> "Mortar/4 Airburst Ammo", "IS-Ammo-Mortar-Airburst-4"
func areaMunitionNames(base Record, label, slug string) (derivedNames, error) {
	tokens := strings.Fields(base.Name)
	sizeAt := -1
	for i, token := range tokens {
		if _, size, ok := strings.Cut(token, "/"); ok && isSize(size) {
			sizeAt = i
			break
		}
	}
	if sizeAt < 0 {
		return derivedNames{}, malformed(base, "name", "no size token")
	}
	key, err := spliceBeforeSize(base, slug)
	if err != nil {
		return derivedNames{}, err
	}
	name := make([]string, 0, len(tokens)+1)
	name = append(name, tokens[:sizeAt+1]...)
	name = append(name, label)
	name = append(name, tokens[sizeAt+1:]...)
	return derivedNames{
		Name:      strings.Join(name, " "),
		ShortName: base.ShortName + " " + label,
		Key:       key,
	}, nil
}

func spliceBeforeSize(base Record, slug string) (string, error) {
	idx := strings.LastIndex(base.Key, "-")
	if idx <= 0 || !isSize(base.Key[idx+1:]) {
		return "", malformed(base, "key", "want trailing size segment")
	}
	return base.Key[:idx] + "-" + slug + base.Key[idx:], nil
}

func isSize(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

func malformed(base Record, field, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeMalformedKey,
		fmt.Sprintf("malformed %s on %s record %q: %s", field, base.Category, base.Key, reason),
		map[string]string{"Key": base.Key, "Field": field, "Category": string(base.Category)},
	)
}
