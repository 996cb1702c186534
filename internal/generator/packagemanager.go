package generator

// PackageManager identifies a supported Node package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// PackageManagers returns the supported managers in prompt order.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, Yarn, PNPM}
}

// ParsePackageManager converts a string to a PackageManager, returning false
// if invalid.
func ParsePackageManager(s string) (PackageManager, bool) {
	switch s {
	case "npm":
		return NPM, true
	case "yarn":
		return Yarn, true
	case "pnpm":
		return PNPM, true
	default:
		return "", false
	}
}

// InstallCommand returns the full dependency install invocation for pm.
func InstallCommand(pm PackageManager) []string {
	switch pm {
	case Yarn:
		return []string{"yarn"}
	case PNPM:
		return []string{"pnpm", "install"}
	default:
		return []string{"npm", "install"}
	}
}

// AddCommand returns the invocation that installs the given packages.
func AddCommand(pm PackageManager, pkgs ...string) []string {
	var cmd []string
	switch pm {
	case Yarn:
		cmd = []string{"yarn", "add"}
	case PNPM:
		cmd = []string{"pnpm", "add"}
	default:
		cmd = []string{"npm", "install"}
	}
	return append(cmd, pkgs...)
}

// DevCommand returns the invocation that starts the dev server.
func DevCommand(pm PackageManager) []string {
	switch pm {
	case Yarn:
		return []string{"yarn", "dev"}
	case PNPM:
		return []string{"pnpm", "dev"}
	default:
		return []string{"npm", "run", "dev"}
	}
}
