package generator

// Framework identifies a supported starter-kit framework.
type Framework string

const (
	React   Framework = "react"
	NextJS  Framework = "nextjs"
	Angular Framework = "angular"
	Vue     Framework = "vue"
)

// Template identifiers understood by ScaffoldCommand.
const (
	TemplateJavaScript = "javascript"
	TemplateTypeScript = "typescript"
	TemplateStandard   = "standard"
	TemplateSSR        = "ssr"
	TemplatePWA        = "pwa"
)

// Frameworks returns the supported frameworks in prompt order.
func Frameworks() []Framework {
	return []Framework{React, NextJS, Angular, Vue}
}

// ParseFramework converts a string to a Framework, returning false if invalid.
func ParseFramework(s string) (Framework, bool) {
	switch s {
	case "react":
		return React, true
	case "nextjs":
		return NextJS, true
	case "angular":
		return Angular, true
	case "vue":
		return Vue, true
	default:
		return "", false
	}
}

// TemplateOptions returns the template choices for a framework. The option
// set depends on the framework answer; unrecognized frameworks get a generic
// set. Kept next to ScaffoldCommand so the two tables stay consistent.
func TemplateOptions(framework Framework) []string {
	switch framework {
	case React, Vue, NextJS:
		return []string{TemplateJavaScript, TemplateTypeScript}
	case Angular:
		return []string{TemplateStandard, TemplateSSR}
	default:
		return []string{TemplateJavaScript, TemplateTypeScript, TemplatePWA}
	}
}

// ScaffoldCommand maps (framework, template, appName) to the external
// scaffold invocation, one case per supported framework. It has no side
// effects. Unknown frameworks yield nil; callers treat that as a fatal
// misconfiguration before anything runs.
func ScaffoldCommand(framework Framework, template, appName string) []string {
	switch framework {
	case React:
		variant := "react"
		if template == TemplateTypeScript {
			variant = "react-ts"
		}
		return []string{"npx", "create-vite@latest", appName, "--template", variant}

	case NextJS:
		cmd := []string{"npx", "create-next-app@latest", appName}
		if template == TemplateTypeScript {
			cmd = append(cmd, "--typescript")
		}
		return cmd

	case Angular:
		cmd := []string{"npx", "@angular/cli@latest", "new", appName}
		if template == TemplateSSR {
			return append(cmd, "--ssr")
		}
		return append(cmd, "--strict")

	case Vue:
		variant := "vue"
		if template == TemplateTypeScript {
			variant = "vue-ts"
		}
		return []string{"npx", "create-vite@latest", appName, "--template", variant}

	default:
		return nil
	}
}
