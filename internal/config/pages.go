package config

import "strconv"

// Default box titles used when a page does not set its own.
const (
	DefaultMenuBoxTitle           = "Menu"
	DefaultSelectedBoxTitle       = "Selected"
	DefaultListBoxTitle           = "List"
	DefaultBodyBoxTitle           = "Body"
	DefaultSaveCommandDescription = "save"
)

// PageOptions configures one nesting depth of the list hierarchy.
type PageOptions struct {
	// Title is shown in the header before the current list's name.
	Title string `yaml:"title" json:"title" mapstructure:"title"`
	// MenuBoxTitle labels the box holding the current list.
	MenuBoxTitle string `yaml:"menu_box_title" json:"menu_box_title" mapstructure:"menu_box_title"`
	// SelectedBoxTitle labels the box describing the selected item.
	SelectedBoxTitle string `yaml:"selected_box_title" json:"selected_box_title" mapstructure:"selected_box_title"`
	// ListBoxTitle labels the preview of the selected item's sub-list.
	ListBoxTitle string `yaml:"list_box_title" json:"list_box_title" mapstructure:"list_box_title"`
	// BodyBoxTitle labels the body area.
	BodyBoxTitle string `yaml:"body_box_title" json:"body_box_title" mapstructure:"body_box_title"`
	// SaveCommandDescription is the usage hint for the save key.
	SaveCommandDescription string `yaml:"save_command_description" json:"save_command_description" mapstructure:"save_command_description"`

	DisableAdd    bool `yaml:"disable_add" json:"disable_add" mapstructure:"disable_add"`
	DisableEdit   bool `yaml:"disable_edit" json:"disable_edit" mapstructure:"disable_edit"`
	DisableDelete bool `yaml:"disable_delete" json:"disable_delete" mapstructure:"disable_delete"`
	DisableSave   bool `yaml:"disable_save" json:"disable_save" mapstructure:"disable_save"`
}

// NewPageOptions returns a page with the given title, default labels and
// every operation enabled.
func NewPageOptions(title string) PageOptions {
	return PageOptions{
		Title:                  title,
		MenuBoxTitle:           DefaultMenuBoxTitle,
		SelectedBoxTitle:       DefaultSelectedBoxTitle,
		ListBoxTitle:           DefaultListBoxTitle,
		BodyBoxTitle:           DefaultBodyBoxTitle,
		SaveCommandDescription: DefaultSaveCommandDescription,
	}
}

// applyDefaults fills empty labels. Disable flags are left alone.
func (p *PageOptions) applyDefaults(depth int) {
	defaults := NewPageOptions(strconv.Itoa(depth))
	if p.Title == "" {
		p.Title = defaults.Title
	}
	if p.MenuBoxTitle == "" {
		p.MenuBoxTitle = defaults.MenuBoxTitle
	}
	if p.SelectedBoxTitle == "" {
		p.SelectedBoxTitle = defaults.SelectedBoxTitle
	}
	if p.ListBoxTitle == "" {
		p.ListBoxTitle = defaults.ListBoxTitle
	}
	if p.BodyBoxTitle == "" {
		p.BodyBoxTitle = defaults.BodyBoxTitle
	}
	if p.SaveCommandDescription == "" {
		p.SaveCommandDescription = defaults.SaveCommandDescription
	}
}

// Pages is the per-depth configuration, indexed by nesting depth.
type Pages []PageOptions

// ForDepth returns the options for depth. Depths beyond the configured pages
// get a default page titled with the depth number.
func (p Pages) ForDepth(depth int) PageOptions {
	if depth >= 0 && depth < len(p) {
		return p[depth]
	}
	return NewPageOptions(strconv.Itoa(depth))
}
