package llmconfig

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/openoperator/webui-bridge/pkg/diag"
	"github.com/openoperator/webui-bridge/pkg/settings"
	"github.com/openoperator/webui-bridge/pkg/webuidir"
	"gopkg.in/yaml.v3"
)

// UserKeyFile is the working-directory file a user can drop an API key into.
const UserKeyFile = ".api-key"

// KeyEnvVar is the environment variable consulted during key resolution.
const KeyEnvVar = "OPENAI_API_KEY"

// KeyEnvVars lists every environment variable name reported by the key
// location overview. Only KeyEnvVar participates in resolution.
var KeyEnvVars = []string{"OPENAI_API_KEY", "API_KEY", "OPENAI_KEY"}

// keyShape is the permissive shape check for API keys. It is deliberately
// loose: key formats change, and the Web UI is the final authority.
var keyShape = regexp.MustCompile(`^sk-[A-Za-z0-9_-]+`)

// ValidKey reports whether the key matches the expected shape.
func ValidKey(key string) bool {
	return keyShape.MatchString(strings.TrimSpace(key))
}

// ResolveAPIKey walks the candidate key sources in a fixed order and returns
// the first valid key along with a label naming its source. Every source is
// best-effort; a failing or invalid source falls through to the next one.
func ResolveAPIKey(webui webuidir.Dir, haveWebUI bool) (key, source string, ok bool) {
	steps := []struct {
		source string
		lookup func() (string, bool)
	}{
		{"web UI settings", func() (string, bool) { return fromSettingsDir(webui, haveWebUI) }},
		{UserKeyFile + " file", fromUserFile},
		{"environment", fromEnv},
		{"web UI config.yaml", func() (string, bool) { return fromWebUIConfig(webui, haveWebUI) }},
		{"web UI .env", func() (string, bool) { return fromWebUIEnv(webui, haveWebUI) }},
	}

	for _, step := range steps {
		if key, ok := step.lookup(); ok {
			diag.Logf("using API key from %s", step.source)
			return key, step.source, true
		}
	}

	return "", "", false
}

func fromSettingsDir(webui webuidir.Dir, haveWebUI bool) (string, bool) {
	if !haveWebUI {
		return "", false
	}

	key, ok := settings.APIKeyFromDir(webui.SettingsDir(), settings.DefaultTimeout)
	if !ok {
		return "", false
	}
	if !ValidKey(key) {
		diag.Warnf("invalid API key shape in web UI settings")
		return "", false
	}

	return strings.TrimSpace(key), true
}

func fromUserFile() (string, bool) {
	data, err := os.ReadFile(UserKeyFile)
	if err != nil {
		return "", false
	}

	// First non-empty, non-comment line holds the key.
	for _, line := range strings.Split(string(data), "\n") {
		key := strings.TrimSpace(line)
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		if !ValidKey(key) {
			diag.Warnf("invalid API key shape in %s", UserKeyFile)
			return "", false
		}

		return key, true
	}

	return "", false
}

func fromEnv() (string, bool) {
	key := os.Getenv(KeyEnvVar)
	if key == "" {
		return "", false
	}
	if !ValidKey(key) {
		diag.Warnf("invalid API key shape in %s", KeyEnvVar)
		return "", false
	}

	return strings.TrimSpace(key), true
}

func fromWebUIConfig(webui webuidir.Dir, haveWebUI bool) (string, bool) {
	if !haveWebUI {
		return "", false
	}

	data, err := os.ReadFile(webui.ConfigPath())
	if err != nil {
		return "", false
	}

	var doc struct {
		APIKey string `yaml:"llm_api_key"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", false
	}

	if doc.APIKey == "" || !ValidKey(doc.APIKey) {
		return "", false
	}

	return strings.TrimSpace(doc.APIKey), true
}

func fromWebUIEnv(webui webuidir.Dir, haveWebUI bool) (string, bool) {
	if !haveWebUI {
		return "", false
	}

	vars, err := godotenv.Read(webui.EnvPath())
	if err != nil {
		return "", false
	}

	key := strings.TrimSpace(vars[KeyEnvVar])
	if key == "" {
		return "", false
	}
	if !ValidKey(key) {
		diag.Warnf("invalid API key shape in %s", webui.EnvPath())
		return "", false
	}

	return key, true
}
