package nav

import "path/filepath"

// ResolveCandidates turns stored history paths into the list offered to the
// picker. paths must be ordered most recent first. The result holds unique
// absolute paths in input order; the first occurrence of a path wins.
//
// A path that cannot be canonicalized (it no longer exists) is kept as-is
// when absolute and joined under the home directory when relative. Relative
// paths are dropped if the home directory is unknown.
func (s *NavService) ResolveCandidates(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		abs, ok := s.resolveOne(p)
		if !ok {
			s.logger.Debug("dropping unresolvable history entry", "path", p)
			continue
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		if s.fsmgr.IsExcluded(abs) {
			continue
		}
		out = append(out, abs)
	}
	return out
}

func (s *NavService) resolveOne(p string) (string, bool) {
	if abs, err := s.fsmgr.Canonicalize(p); err == nil {
		return abs, true
	}
	if filepath.IsAbs(p) {
		return p, true
	}
	home, err := s.fsmgr.HomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, p), true
}
