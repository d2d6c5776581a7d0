package versions

import (
	"math"
	"strconv"
	"strings"
)

const (
	// FieldsPerPart bounds how many separator-delimited fields of each part
	// take part in ordering. Changing it changes the order of releases with
	// more fields than this.
	FieldsPerPart = 3

	// PartsPerKey is the upstream release plus the local patch level.
	PartsPerKey = 2

	// KeyComponents counts the (number, suffix) components of a Key.
	KeyComponents = 2 * PartsPerKey * FieldsPerPart

	localPatchMarker = "dls"
)

var separators = strings.NewReplacer(".", "-", "_", "-")

// Field is one component of a release number: the leading decimal run of the
// field and whatever follows it. A field with no leading digits has Number 0
// and the whole field as Suffix.
type Field struct {
	Number int64
	Suffix string
}

func (f Field) Compare(other Field) int {
	switch {
	case f.Number < other.Number:
		return -1
	case f.Number > other.Number:
		return 1
	}

	return strings.Compare(f.Suffix, other.Suffix)
}

// Key orders release numbers. The first FieldsPerPart fields come from the
// upstream release, the rest from the local patch level that follows "dls".
// Unused fields are the zero Field.
type Key [PartsPerKey * FieldsPerPart]Field

func (k Key) Compare(other Key) int {
	for i := range k {
		if c := k[i].Compare(other[i]); c != 0 {
			return c
		}
	}

	return 0
}

func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// Upstream is the part of the key before the local patch marker.
func (k Key) Upstream() []Field {
	return k[:FieldsPerPart]
}

// LocalPatch is the part of the key after the local patch marker.
func (k Key) LocalPatch() []Field {
	return k[FieldsPerPart:]
}

// Normalize turns any release string into a Key. It accepts every input:
// text without a recognisable release number ends up near the start of the
// ordering. A missing field equals a zero field, so "1" and "1-0" share a key.
//
//	4-5beta2dls1-3 -> (4,"") (5,"beta2") (0,"") | (1,"") (3,"") (0,"")
func Normalize(raw string) Key {
	var key Key

	parts := strings.SplitN(raw, localPatchMarker, PartsPerKey)
	for p, part := range parts {
		fields := strings.SplitN(separators.Replace(part), "-", FieldsPerPart+1)
		for f := 0; f < len(fields) && f < FieldsPerPart; f++ {
			key[p*FieldsPerPart+f] = parseField(fields[f])
		}
	}

	return key
}

func parseField(field string) Field {
	digits := 0
	for digits < len(field) && field[digits] >= '0' && field[digits] <= '9' {
		digits++
	}

	if digits == 0 {
		return Field{Suffix: field}
	}

	number, err := strconv.ParseInt(field[:digits], 10, 64)
	if err != nil {
		number = math.MaxInt64
	}

	return Field{Number: number, Suffix: field[digits:]}
}
