package studio

import (
	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// SelectedTemplate returns the current template name.
func (s *Session) SelectedTemplate() string {
	return s.selected
}

// Template returns the descriptor of the selected template. It is false when
// the selection is the fallback name and the registry does not declare it.
func (s *Session) Template() (schema.Template, bool) {
	return s.registry.Template(s.selected)
}

// SelectTemplate switches the active template and resets that template's
// declared fields to their defaults before returning, so no reader can
// observe a mix of two templates' values. Selecting the current template is
// not a change and leaves the values alone.
func (s *Session) SelectTemplate(name string) {
	if name == s.selected {
		return
	}
	previous := s.selected
	s.selected = name
	s.touch()
	s.ResetTemplateOptions(name)
	s.logger.Debug("template selected", "from", previous, "to", name)
}

// ResetTemplateOptions re-applies the named template's own option defaults.
// username and fields the template does not declare are untouched. Unknown
// names are a no-op and report false.
func (s *Session) ResetTemplateOptions(name string) bool {
	tpl, ok := s.registry.Template(name)
	if !ok {
		s.logger.Debug("reset skipped, template not declared", "template", name)
		return false
	}
	defaults := tpl.Defaults()
	defaults.Delete(UsernameField)
	s.values.Assign(defaults)
	s.touch()
	return true
}
