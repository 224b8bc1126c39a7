package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLoad_Defaults(t *testing.T) {
	is := is.New(t)

	cfg, err := load()
	is.NoErr(err)
	is.True(cfg.Data != "")
	is.Equal(cfg.Celebration.Duration, 3*time.Second)
}

func TestLoad_FileOverrides(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFile)
	is.NoErr(os.WriteFile(file, []byte("data = \"/tmp/elsewhere.json\"\ncelebration = \"5s\"\n"), 0600))

	cfg, err := load(file)
	is.NoErr(err)
	is.Equal(cfg.Data, "/tmp/elsewhere.json")
	is.Equal(cfg.Celebration.Duration, 5*time.Second)
}

func TestLoad_LaterFilesWin(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	is.NoErr(os.WriteFile(user, []byte("celebration = \"5s\"\n"), 0600))
	is.NoErr(os.WriteFile(project, []byte("celebration = \"1s\"\n"), 0600))

	cfg, err := load(user, project)
	is.NoErr(err)
	is.Equal(cfg.Celebration.Duration, time.Second)
}

func TestLoad_MissingFilesAreSkipped(t *testing.T) {
	is := is.New(t)

	cfg, err := load("", filepath.Join(t.TempDir(), "absent.toml"))
	is.NoErr(err)
	is.Equal(cfg.Celebration.Duration, 3*time.Second)
}

func TestLoad_BadDuration(t *testing.T) {
	is := is.New(t)

	file := filepath.Join(t.TempDir(), ConfigFile)
	is.NoErr(os.WriteFile(file, []byte("celebration = \"soon\"\n"), 0600))

	_, err := load(file)
	is.True(err != nil)
}

func TestEnsureDataDir(t *testing.T) {
	is := is.New(t)

	cfg := &Config{Data: filepath.Join(t.TempDir(), "deep", "data.json")}
	is.NoErr(cfg.EnsureDataDir())
	info, err := os.Stat(filepath.Dir(cfg.Data))
	is.NoErr(err)
	is.True(info.IsDir())
}
