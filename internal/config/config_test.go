package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyManifest); got != "package.json" {
		t.Fatalf("expected default %s to be package.json, got %q", KeyManifest, got)
	}
	if got := GetString(KeyOutputDir); got != "themes" {
		t.Fatalf("expected default %s to be themes, got %q", KeyOutputDir, got)
	}
	if got := GetInt(KeyOutputIndent); got != DefaultIndent {
		t.Fatalf("expected default %s to be %d, got %d", KeyOutputIndent, DefaultIndent, got)
	}
	if GetBool(KeyBuildStrict) {
		t.Fatalf("expected default %s to be false", KeyBuildStrict)
	}
	if !GetBool(KeyCacheEnabled) {
		t.Fatalf("expected default %s to be true", KeyCacheEnabled)
	}
	if got := GetString(KeyPreviewStyle); got != "dark" {
		t.Fatalf("expected default %s to be dark, got %q", KeyPreviewStyle, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, DirName))
	projectCfg := filepath.Join(projectDir, DirName, "config.yaml")
	writeFile(t, projectCfg, `
output:
  dir: project-themes
build:
  strict: true
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
output:
  dir: user-themes
  indent: 4
build:
  strict: false
`)

	nested := filepath.Join(projectDir, "sub", "dir")
	mustMkdir(t, nested)

	if err := Initialize(
		WithWorkingDir(nested),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyOutputDir); got != "project-themes" {
		t.Fatalf("expected project config to win for %s, got %q", KeyOutputDir, got)
	}
	if got := GetInt(KeyOutputIndent); got != 4 {
		t.Fatalf("expected user indent to survive merge, got %d", got)
	}
	if !GetBool(KeyBuildStrict) {
		t.Fatalf("expected build.strict to be true after merging project config")
	}
	if got := GetPath(KeyOutputDir); got != filepath.Join(projectDir, "project-themes") {
		t.Fatalf("expected output dir relative to project root, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, DirName, "config.yaml")
	writeFile(t, projectCfg, `
build:
  strict: false
palettes:
  dir: project-palettes
`)

	t.Setenv("SEMTHEME_BUILD_STRICT", "true")
	t.Setenv("SEMTHEME_PALETTES_DIR", "/env/palettes")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if !GetBool(KeyBuildStrict) {
		t.Fatalf("expected environment variable to override %s", KeyBuildStrict)
	}
	if got := GetPath(KeyPalettesDir); got != "/env/palettes" {
		t.Fatalf("expected env override for %s, got %q", KeyPalettesDir, got)
	}

	overrides := map[string]any{
		KeyBuildStrict: false,
		KeyBuildJobs:   3,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if GetBool(KeyBuildStrict) {
		t.Fatalf("expected CLI override to set %s=false", KeyBuildStrict)
	}
	if got := GetInt(KeyBuildJobs); got != 3 {
		t.Fatalf("expected override for %s = 3, got %d", KeyBuildJobs, got)
	}
}

func TestInitializeRejectsBrokenConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "output: [unterminated\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err == nil {
		t.Fatalf("expected parse error for malformed user config")
	}
}

func TestGetPathWithoutProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetPath(KeyCachePath); got != filepath.Join(tmp, DirName, "cache.db") {
		t.Fatalf("expected cache path under working dir, got %q", got)
	}
}

func TestSaveWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "home", DirName, "config.yaml")
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	setUserConfigPathOverride(userCfg)

	if err := Save(KeyPreviewStyle, "light"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := GetString(KeyPreviewStyle); got != "light" {
		t.Fatalf("expected in-memory value to follow save, got %q", got)
	}

	v := viper.New()
	v.SetConfigFile(userCfg)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if got := v.GetString(KeyPreviewStyle); got != "light" {
		t.Fatalf("expected saved %s = light, got %q", KeyPreviewStyle, got)
	}
}

func TestSavePrefersProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectCfg := filepath.Join(tmp, DirName, "config.yaml")
	writeFile(t, projectCfg, "output:\n  dir: out\n")
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if err := Save(KeyPreviewStyle, "notty"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(projectCfg)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read project config: %v", err)
	}
	if got := v.GetString(KeyOutputDir); got != "out" {
		t.Fatalf("expected existing keys preserved, got %q", got)
	}
	if got := v.GetString(KeyPreviewStyle); got != "notty" {
		t.Fatalf("expected saved style in project config, got %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
