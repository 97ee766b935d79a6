package figure

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ShareRole names the axis a subplot shares.
type ShareRole string

const (
	ShareX ShareRole = "sharex"
	ShareY ShareRole = "sharey"
)

func (r ShareRole) valid() bool { return r == ShareX || r == ShareY }

// ShareMap maps a subplot index to the lower-numbered subplot whose axis it
// reuses, per role. Indices are row-major grid positions.
type ShareMap map[int]map[ShareRole]int

// Validate checks every entry against a grid of n subplots: keys must be in
// range, roles known, and each reference strictly lower than its key.
// Entries are checked in ascending key order so the reported error is stable.
func (m ShareMap) Validate(n int) error {
	for _, ix := range m.keys() {
		if ix < 0 || ix >= n {
			return &InvalidShareReferenceError{Index: ix, Reason: fmt.Sprintf("no such subplot in a grid of %d", n)}
		}
		for _, role := range sortedRoles(m[ix]) {
			if err := checkRef(ix, role, m[ix][role]); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRef(ix int, role ShareRole, ref int) error {
	switch {
	case !role.valid():
		return &InvalidShareReferenceError{Index: ix, Role: role, Ref: ref, Reason: "unknown role"}
	case ref < 0:
		return &InvalidShareReferenceError{Index: ix, Role: role, Ref: ref, Reason: "negative index"}
	case ref >= ix:
		return &InvalidShareReferenceError{Index: ix, Role: role, Ref: ref, Reason: "subplot not built yet"}
	}
	return nil
}

func (m ShareMap) keys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedRoles(roles map[ShareRole]int) []ShareRole {
	out := make([]ShareRole, 0, len(roles))
	for r := range roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders m in the ParseShareSpec text form.
func (m ShareMap) String() string {
	parts := make([]string, 0, len(m))
	for _, ix := range m.keys() {
		roles := sortedRoles(m[ix])
		kv := make([]string, 0, len(roles))
		for _, r := range roles {
			kv = append(kv, fmt.Sprintf("%s=%d", r, m[ix][r]))
		}
		parts = append(parts, fmt.Sprintf("%d:%s", ix, strings.Join(kv, ",")))
	}
	return strings.Join(parts, ";")
}

// ShareSpec selects how subplots share axes: not at all (the zero value),
// all with subplot 0, or by an explicit ShareMap.
type ShareSpec struct {
	all bool
	m   ShareMap
}

// ShareAll makes every subplot after the first share both axes with
// subplot 0.
func ShareAll() ShareSpec { return ShareSpec{all: true} }

// ShareWith shares axes according to m.
func ShareWith(m ShareMap) ShareSpec { return ShareSpec{m: m} }

// IsAll reports whether s is ShareAll.
func (s ShareSpec) IsAll() bool { return s.all }

// Resolve returns the explicit ShareMap for a grid of n subplots. The
// returned map is a fresh copy; the caller's map is never modified.
func (s ShareSpec) Resolve(n int) ShareMap {
	out := make(ShareMap)
	if s.all {
		for ix := 1; ix < n; ix++ {
			out[ix] = map[ShareRole]int{ShareX: 0, ShareY: 0}
		}
		return out
	}
	for ix, roles := range s.m {
		cp := make(map[ShareRole]int, len(roles))
		for r, ref := range roles {
			cp[r] = ref
		}
		out[ix] = cp
	}
	return out
}

// String renders s in the ParseShareSpec text form.
func (s ShareSpec) String() string {
	if s.all {
		return "all"
	}
	return s.m.String()
}

// ParseShareSpec parses "all", "" (no sharing) or explicit entries such as
// "1:sharex=0,sharey=0;3:sharey=2". Roles may be abbreviated to x and y.
// Index ordering is checked later, against the grid.
func ParseShareSpec(text string) (ShareSpec, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return ShareSpec{}, nil
	case "all":
		return ShareAll(), nil
	}

	m := make(ShareMap)
	for _, entry := range strings.Split(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, body, ok := strings.Cut(entry, ":")
		if !ok {
			return ShareSpec{}, fmt.Errorf("share entry %q: missing ':'", entry)
		}
		ix, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return ShareSpec{}, fmt.Errorf("share entry %q: invalid index: %w", entry, err)
		}
		if _, dup := m[ix]; dup {
			return ShareSpec{}, fmt.Errorf("share entry %q: subplot %d listed twice", entry, ix)
		}
		roles := make(map[ShareRole]int)
		for _, kv := range strings.Split(body, ",") {
			name, val, ok := strings.Cut(strings.TrimSpace(kv), "=")
			if !ok {
				return ShareSpec{}, fmt.Errorf("share entry %q: expected role=index, got %q", entry, kv)
			}
			role, err := parseRole(name)
			if err != nil {
				return ShareSpec{}, fmt.Errorf("share entry %q: %w", entry, err)
			}
			ref, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return ShareSpec{}, fmt.Errorf("share entry %q: invalid reference: %w", entry, err)
			}
			roles[role] = ref
		}
		m[ix] = roles
	}
	return ShareWith(m), nil
}

func parseRole(s string) (ShareRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharex", "x":
		return ShareX, nil
	case "sharey", "y":
		return ShareY, nil
	}
	return "", fmt.Errorf("unknown share role %q", s)
}
