package generator

import (
	"strings"
	"testing"
)

func TestScaffoldCommand_AllSupportedPairs(t *testing.T) {
	cases := []struct {
		framework Framework
		template  string
		wantToken string
	}{
		{React, TemplateTypeScript, "react-ts"},
		{React, TemplateJavaScript, "react"},
		{NextJS, TemplateTypeScript, "--typescript"},
		{NextJS, TemplateJavaScript, "create-next-app@latest"},
		{Angular, TemplateSSR, "--ssr"},
		{Angular, TemplateStandard, "--strict"},
		{Vue, TemplateTypeScript, "vue-ts"},
		{Vue, TemplateJavaScript, "vue"},
	}

	for _, tc := range cases {
		t.Run(string(tc.framework)+"/"+tc.template, func(t *testing.T) {
			cmd := ScaffoldCommand(tc.framework, tc.template, "demo")
			if len(cmd) == 0 {
				t.Fatalf("ScaffoldCommand(%s, %s) is empty", tc.framework, tc.template)
			}
			joined := strings.Join(cmd, " ")
			if !strings.Contains(joined, tc.wantToken) {
				t.Errorf("ScaffoldCommand(%s, %s) = %q, want token %q",
					tc.framework, tc.template, joined, tc.wantToken)
			}
			if !strings.Contains(joined, "demo") {
				t.Errorf("ScaffoldCommand(%s, %s) = %q, missing app name",
					tc.framework, tc.template, joined)
			}
		})
	}
}

func TestScaffoldCommand_NextJSJavaScriptHasNoTypeScriptFlag(t *testing.T) {
	cmd := ScaffoldCommand(NextJS, TemplateJavaScript, "demo")
	for _, arg := range cmd {
		if arg == "--typescript" {
			t.Errorf("ScaffoldCommand(nextjs, javascript) = %v, should not carry --typescript", cmd)
		}
	}
}

func TestScaffoldCommand_UnknownFramework(t *testing.T) {
	cmd := ScaffoldCommand(Framework("svelte"), TemplateTypeScript, "demo")
	if cmd != nil {
		t.Errorf("ScaffoldCommand(svelte) = %v, want nil", cmd)
	}
}

func TestTemplateOptions(t *testing.T) {
	cases := []struct {
		framework Framework
		want      []string
	}{
		{React, []string{TemplateJavaScript, TemplateTypeScript}},
		{Vue, []string{TemplateJavaScript, TemplateTypeScript}},
		{NextJS, []string{TemplateJavaScript, TemplateTypeScript}},
		{Angular, []string{TemplateStandard, TemplateSSR}},
		{Framework("svelte"), []string{TemplateJavaScript, TemplateTypeScript, TemplatePWA}},
	}

	for _, tc := range cases {
		t.Run(string(tc.framework), func(t *testing.T) {
			got := TemplateOptions(tc.framework)
			if len(got) != len(tc.want) {
				t.Fatalf("TemplateOptions(%s) = %v, want %v", tc.framework, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("TemplateOptions(%s)[%d] = %q, want %q", tc.framework, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseFramework(t *testing.T) {
	for _, f := range Frameworks() {
		got, ok := ParseFramework(string(f))
		if !ok || got != f {
			t.Errorf("ParseFramework(%q) = %q, %v", f, got, ok)
		}
	}
	if _, ok := ParseFramework("ember"); ok {
		t.Error("ParseFramework(\"ember\") returned true, want false")
	}
}

func TestPackageManagerCommands(t *testing.T) {
	cases := []struct {
		pm          PackageManager
		wantInstall string
		wantAdd     string
		wantDev     string
	}{
		{NPM, "npm install", "npm install tailwindcss", "npm run dev"},
		{Yarn, "yarn", "yarn add tailwindcss", "yarn dev"},
		{PNPM, "pnpm install", "pnpm add tailwindcss", "pnpm dev"},
	}

	for _, tc := range cases {
		t.Run(string(tc.pm), func(t *testing.T) {
			if got := strings.Join(InstallCommand(tc.pm), " "); got != tc.wantInstall {
				t.Errorf("InstallCommand(%s) = %q, want %q", tc.pm, got, tc.wantInstall)
			}
			if got := strings.Join(AddCommand(tc.pm, "tailwindcss"), " "); got != tc.wantAdd {
				t.Errorf("AddCommand(%s) = %q, want %q", tc.pm, got, tc.wantAdd)
			}
			if got := strings.Join(DevCommand(tc.pm), " "); got != tc.wantDev {
				t.Errorf("DevCommand(%s) = %q, want %q", tc.pm, got, tc.wantDev)
			}
		})
	}
}

func TestParsePackageManager(t *testing.T) {
	for _, pm := range PackageManagers() {
		got, ok := ParsePackageManager(string(pm))
		if !ok || got != pm {
			t.Errorf("ParsePackageManager(%q) = %q, %v", pm, got, ok)
		}
	}
	if _, ok := ParsePackageManager("bun"); ok {
		t.Error("ParsePackageManager(\"bun\") returned true, want false")
	}
}
