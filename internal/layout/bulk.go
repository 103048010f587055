package layout

// BulkSetEnabled flips Enabled for every selected id whose state differs
// from the target, returning how many sections actually changed. Ids already
// at the target state are skipped so no spurious change is recorded.
func (s *service) BulkSetEnabled(ids []string, enabled bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, id := range ids {
		idx := s.indexLocked(id)
		if idx < 0 || s.sections[idx].Enabled == enabled {
			continue
		}
		s.sections[idx].Enabled = enabled
		changed++
	}
	if changed > 0 {
		s.scheduleAutosaveLocked()
	}
	return changed
}

// BulkDelete removes every selected id, tolerating ids that are already
// absent, and returns how many sections were removed. Confirmation is the
// caller's responsibility.
func (s *service) BulkDelete(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, id := range ids {
		idx := s.indexLocked(id)
		if idx < 0 {
			continue
		}
		s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
		removed++
	}
	if removed > 0 {
		s.scheduleAutosaveLocked()
	}
	return removed
}

// BulkDuplicate copies every selected section with a fresh id, a " (Copy)"
// title suffix, and an Order equal to the collection length at the moment of
// that individual duplication. Duplicating N sections therefore appends them
// sequentially, each seeing the previous duplicate already appended.
func (s *service) BulkDuplicate(ids []string) []Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]Section, 0, len(ids))
	for _, id := range ids {
		idx := s.indexLocked(id)
		if idx < 0 {
			continue
		}
		duplicate := CloneSection(s.sections[idx])
		duplicate.ID = s.id(duplicate.Type)
		duplicate.Title = duplicate.Title + " (Copy)"
		duplicate.Order = len(s.sections)
		s.sections = append(s.sections, duplicate)
		created = append(created, CloneSection(duplicate))
	}
	if len(created) > 0 {
		s.scheduleAutosaveLocked()
	}
	return created
}

// ApplyTemplate discards the current layout and installs the template's
// sections verbatim.
func (s *service) ApplyTemplate(list []Section) {
	s.ReplaceAll(list)
}

// AppendFromTemplate constructs one new section from a template entry and
// appends it: fresh id, Order equal to the current collection length,
// everything else taken from the entry.
func (s *service) AppendFromTemplate(section Section) Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	appended := CloneSection(section)
	appended.ID = s.id(appended.Type)
	appended.Order = len(s.sections)
	s.sections = append(s.sections, appended)
	s.scheduleAutosaveLocked()
	return CloneSection(appended)
}
