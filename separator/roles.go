// SPDX-License-Identifier: EPL-2.0

package separator

import (
	"fmt"

	"github.com/ik5/audclean/audio"
)

// Role is the part a group of sources plays in recombination.
type Role string

const (
	RoleVocals     Role = "vocals"
	RoleBackground Role = "background"
)

// Roles maps each role to the sources whose sum forms it.
type Roles map[Role][]string

// DefaultRoles maps vocals to the first source name and background to the
// second.
func DefaultRoles(names []string) Roles {
	r := Roles{}
	if len(names) > 0 {
		r[RoleVocals] = []string{names[0]}
	}
	if len(names) > 1 {
		r[RoleBackground] = []string{names[1]}
	}
	return r
}

// Resolve returns the sum of the sources mapped to role. The result is a
// new waveform; the sources are not modified.
func (r Roles) Resolve(s *Sources, role Role) (*audio.Waveform, error) {
	names := r[role]
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	var sum *audio.Waveform
	for _, name := range names {
		w, ok := s.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q for role %s (have %v)", ErrUnknownSource, name, role, s.Names())
		}
		if sum == nil {
			sum = w.Clone()
			continue
		}

		next, err := sum.Add(w)
		if err != nil {
			return nil, fmt.Errorf("summing %q into %s: %w", name, role, err)
		}
		sum = next
	}

	return sum, nil
}

// Validate checks every role refers only to names in the given list.
func (r Roles) Validate(names []string) error {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[n] = struct{}{}
	}

	for role, list := range r {
		for _, n := range list {
			if _, ok := known[n]; !ok {
				return fmt.Errorf("%w: %q for role %s", ErrUnknownSource, n, role)
			}
		}
	}
	return nil
}
