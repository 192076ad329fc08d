package greeter

import (
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// HelpStatic generates the help output for static builds.
func HelpStatic() string {
	grp, _ := settings.GroupFromComponent(runhttp.NewComponent())
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   settingsPrefix,
		GroupValues: []settings.Group{grp},
	}})
}
