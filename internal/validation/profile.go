package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sbilibin2017/hackhub/internal/models"
)

// Field is a PATCH-style value: Set is false when the key was absent from the body.
type Field[T any] struct {
	Set   bool
	Value T
}

func set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// ProfileUpdate holds the account fields present in a PATCH body, already type-checked.
// Nullable columns use pointer values; a nil pointer clears the column.
type ProfileUpdate struct {
	Email           Field[string]
	Username        Field[string]
	Password        Field[string]
	Visibility      Field[string]
	FirstName       Field[string]
	LastName        Field[string]
	XP              Field[int]
	Level           Field[int]
	GradYear        Field[*int]
	School          Field[*int64]
	Major           Field[*int64]
	Discord         Field[*string]
	Instagram       Field[*string]
	Github          Field[*string]
	Linkedin        Field[*string]
	Personal        Field[*string]
	Bio             Field[*string]
	Skills          Field[[]int64]
	Interests       Field[[]int64]
	Blocked         Field[[]string]
	ProfileGradient Field[[]string]
}

//go:generate mockgen -source=profile.go -destination=profile_mock_test.go -package=validation

// ReferenceChecker reports which of the given ids are missing from a lookup table.
type ReferenceChecker interface {
	MissingIDs(ctx context.Context, table models.LookupTable, ids []int64) ([]int64, error)
}

// ParseProfile type-checks every known field of a PATCH body and applies the field rules.
// It keeps going after a failure so that all field errors are reported together.
func ParseProfile(raw map[string]json.RawMessage) (*ProfileUpdate, Errors) {
	p := &ProfileUpdate{}
	errs := Errors{}

	if v, ok := parseString(errs, raw, "email"); ok {
		v = strings.TrimSpace(v)
		checkEmail(errs, v)
		p.Email = set(v)
	}
	if v, ok := parseString(errs, raw, "username"); ok {
		if strings.TrimSpace(v) == "" {
			errs.Add("username", "This field may not be blank.")
		}
		checkMaxLength(errs, "username", v, MaxUsernameLength)
		p.Username = set(v)
	}
	if v, ok := parseString(errs, raw, "password"); ok {
		checkPassword(errs, v)
		p.Password = set(v)
	}
	if v, ok := parseString(errs, raw, "visibility"); ok {
		checkVisibility(errs, v)
		p.Visibility = set(v)
	}
	if v, ok := parseString(errs, raw, "first_name"); ok {
		checkMaxLength(errs, "first_name", v, MaxNameLength)
		p.FirstName = set(v)
	}
	if v, ok := parseString(errs, raw, "last_name"); ok {
		checkMaxLength(errs, "last_name", v, MaxNameLength)
		p.LastName = set(v)
	}

	if v, ok := parseInt(errs, raw, "xp", false); ok {
		checkRange(errs, "xp", *v, intPtr(MinXP), nil)
		p.XP = set(*v)
	}
	if v, ok := parseInt(errs, raw, "level", false); ok {
		checkRange(errs, "level", *v, intPtr(MinLevel), intPtr(MaxLevel))
		p.Level = set(*v)
	}
	if v, ok := parseInt(errs, raw, "grad_year", true); ok {
		if v != nil {
			checkRange(errs, "grad_year", *v, intPtr(MinGradYear), intPtr(MaxGradYear))
		}
		p.GradYear = set(v)
	}

	if v, ok := parseID(errs, raw, "school"); ok {
		p.School = set(v)
	}
	if v, ok := parseID(errs, raw, "major"); ok {
		p.Major = set(v)
	}

	p.Discord = parseURL(errs, raw, "discord")
	p.Instagram = parseURL(errs, raw, "instagram")
	p.Github = parseURL(errs, raw, "github")
	p.Linkedin = parseURL(errs, raw, "linkedin")
	p.Personal = parseURL(errs, raw, "personal")

	if msg, ok := raw["bio"]; ok {
		var bio *string
		if err := json.Unmarshal(msg, &bio); err != nil {
			errs.Add("bio", "Must be a string.")
		} else {
			p.Bio = set(bio)
		}
	}

	if v, ok := parseIDList(errs, raw, "skills"); ok {
		p.Skills = set(v)
	}
	if v, ok := parseIDList(errs, raw, "interests"); ok {
		p.Interests = set(v)
	}

	if msg, ok := raw["blocked"]; ok {
		var blocked []string
		if err := json.Unmarshal(msg, &blocked); err != nil || isNull(msg) {
			errs.Add("blocked", "Must be a list.")
		} else {
			for _, id := range blocked {
				if !isUUID(id) {
					errs.Add("blocked", "Must be a list of user UUIDs.")
					break
				}
			}
			p.Blocked = set(blocked)
		}
	}

	if msg, ok := raw["profile_gradient"]; ok {
		if isNull(msg) {
			p.ProfileGradient = set([]string(nil))
		} else if gradient, ok := parseGradient(msg); ok {
			p.ProfileGradient = set(gradient)
		} else {
			errs.Add("profile_gradient", "Must be two hex strings.")
		}
	}

	return p, errs
}

// CheckReferences verifies that school, major, skills and interests point at existing rows.
func CheckReferences(ctx context.Context, checker ReferenceChecker, p *ProfileUpdate, errs Errors) error {
	single := []struct {
		field string
		table models.LookupTable
		value Field[*int64]
		label string
	}{
		{"school", models.Schools, p.School, "School"},
		{"major", models.Majors, p.Major, "Major"},
	}
	for _, s := range single {
		if !s.value.Set || s.value.Value == nil || errs.Has(s.field) {
			continue
		}
		missing, err := checker.MissingIDs(ctx, s.table, []int64{*s.value.Value})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			errs.Add(s.field, s.label+" does not exist.")
		}
	}

	lists := []struct {
		field string
		table models.LookupTable
		value Field[[]int64]
	}{
		{"skills", models.Skills, p.Skills},
		{"interests", models.Interests, p.Interests},
	}
	for _, l := range lists {
		if !l.value.Set || len(l.value.Value) == 0 || errs.Has(l.field) {
			continue
		}
		missing, err := checker.MissingIDs(ctx, l.table, l.value.Value)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			errs.Add(l.field, fmt.Sprintf("Invalid IDs: %v", missing))
		}
	}
	return nil
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

func parseString(errs Errors, raw map[string]json.RawMessage, field string) (string, bool) {
	msg, ok := raw[field]
	if !ok {
		return "", false
	}
	if isNull(msg) {
		errs.Add(field, "This field may not be null.")
		return "", false
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		errs.Add(field, "Must be a string.")
		return "", false
	}
	return s, true
}

// toInt accepts JSON numbers with no fractional part and numeric strings.
func toInt(msg json.RawMessage) (int64, bool) {
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func parseInt(errs Errors, raw map[string]json.RawMessage, field string, nullable bool) (*int, bool) {
	msg, ok := raw[field]
	if !ok {
		return nil, false
	}
	if nullable && isNull(msg) {
		return nil, true
	}
	i, ok := toInt(msg)
	if !ok {
		errs.Add(field, "Must be an integer.")
		return nil, false
	}
	v := int(i)
	return &v, true
}

func parseID(errs Errors, raw map[string]json.RawMessage, field string) (*int64, bool) {
	msg, ok := raw[field]
	if !ok {
		return nil, false
	}
	if isNull(msg) {
		return nil, true
	}
	id, ok := toInt(msg)
	if !ok {
		errs.Add(field, "Must be an integer ID.")
		return nil, false
	}
	return &id, true
}

func parseIDList(errs Errors, raw map[string]json.RawMessage, field string) ([]int64, bool) {
	msg, ok := raw[field]
	if !ok {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil || isNull(msg) {
		errs.Add(field, "Must be a list of IDs.")
		return nil, false
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, ok := toInt(item)
		if !ok {
			errs.Add(field, "Must be a list of IDs.")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func parseURL(errs Errors, raw map[string]json.RawMessage, field string) Field[*string] {
	msg, ok := raw[field]
	if !ok {
		return Field[*string]{}
	}
	var s *string
	if err := json.Unmarshal(msg, &s); err != nil {
		errs.Add(field, "Enter a valid URL.")
		return Field[*string]{}
	}
	if s == nil || *s == "" {
		return set[*string](nil)
	}
	checkURL(errs, field, *s)
	return set(s)
}

func parseGradient(msg json.RawMessage) ([]string, bool) {
	var parts []any
	if err := json.Unmarshal(msg, &parts); err != nil || len(parts) != 2 {
		return nil, false
	}
	out := make([]string, 0, 2)
	for _, part := range parts {
		s, ok := part.(string)
		if !ok {
			return nil, false
		}
		s = strings.ToLower(strings.TrimPrefix(s, "#"))
		if !isHexColor(s) {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
