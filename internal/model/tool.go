package model

// Tool is the shape shared by every packager, announcer and downloader.
type Tool interface {
	Name() string
	IsEnabled() bool
	IsEnabledSet() bool
	SetEnabled(enabled bool)
	Enabled() Tristate
	TemplateDirectory() string
	ExtraProperties() Properties
}

// ToolBase implements Tool and is embedded by concrete kinds.
type ToolBase struct {
	Activation
	name              string
	templateDirectory string
	extraProperties   Properties
}

func newToolBase(name string) ToolBase {
	return ToolBase{name: name}
}

// Name returns the immutable identifier of the tool.
func (t *ToolBase) Name() string {
	return t.name
}

// TemplateDirectory returns the optional template override path.
func (t *ToolBase) TemplateDirectory() string {
	return t.templateDirectory
}

// SetTemplateDirectory sets the template override path.
func (t *ToolBase) SetTemplateDirectory(dir string) {
	t.templateDirectory = dir
}

// ExtraProperties returns a copy of the tool's extra properties.
func (t *ToolBase) ExtraProperties() Properties {
	return t.extraProperties.Clone()
}

// SetExtraProperties replaces all extra properties.
func (t *ToolBase) SetExtraProperties(props Properties) {
	t.extraProperties = props.Clone()
}

// AddExtraProperties merges props into the existing extra properties.
func (t *ToolBase) AddExtraProperties(props Properties) {
	t.extraProperties = t.extraProperties.Merge(props)
}
