// godos - dos-like Go CLI
package main

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed templates/main.go.tmpl
var mainTmpl string

//go:embed templates/gitignore.tmpl
var giTmpl string

//go:embed templates/go.mod.tmpl
var modTmpl string

const version = "0.1.0"
const repo = "https://github.com/mattiasgustavsson/dos-like.git"
const tarball = "https://github.com/mattiasgustavsson/dos-like/archive/refs/heads/main.tar.gz"

type cfg struct {
	Path, SDLInclude  string
	NoFrame, NoCursor bool
}

func (c *cfg) source() string { return filepath.Join(c.Path, "source") }

func cfgPath() string { h, _ := os.UserHomeDir(); return h + "/.config/godos/config.toml" }

func load() *cfg {
	var c cfg
	toml.DecodeFile(cfgPath(), &c)
	if c.Path == "" {
		if p := os.Getenv("DOSLIKE_PATH"); p != "" {
			c.Path = p
		} else {
			h, _ := os.UserHomeDir()
			c.Path = h + "/dos-like"
		}
	}
	if c.SDLInclude == "" {
		c.SDLInclude = os.Getenv("SDL2_INCLUDE_PATH")
	}
	return &c
}

func (c *cfg) save() error {
	os.MkdirAll(filepath.Dir(cfgPath()), 0755)
	f, err := os.Create(cfgPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

func tags(c *cfg) string {
	t := []string{"doslike"}
	if c.NoFrame {
		t = append(t, "doslike_noframe")
	}
	if c.NoCursor {
		t = append(t, "doslike_nocursor")
	}
	return strings.Join(t, ",")
}

func cflags(c *cfg) string {
	f := "-I" + c.source()
	if c.SDLInclude != "" {
		f += " -I" + c.SDLInclude
	}
	if old := os.Getenv("CGO_CFLAGS"); old != "" {
		f = old + " " + f
	}
	return f
}

func env(c *cfg) []string {
	m := map[string]string{"CGO_ENABLED": "1", "CGO_CFLAGS": cflags(c)}
	for _, v := range os.Environ() {
		if i := strings.IndexByte(v, '='); i > 0 {
			if _, ok := m[v[:i]]; !ok {
				m[v[:i]] = v[i+1:]
			}
		}
	}
	r := make([]string, 0, len(m))
	for k, v := range m {
		r = append(r, k+"="+v)
	}
	return r
}

func sh(name string, args []string, dir string, e []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout, cmd.Stderr, cmd.Dir, cmd.Env = os.Stdout, os.Stderr, dir, e
	return cmd.Run()
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("godos: setup|config|init|build|run|doctor|env|update|version")
		return
	}
	c := load()
	var err error
	switch os.Args[1] {
	case "setup":
		err = setup(c)
	case "config":
		r := bufio.NewReader(os.Stdin)
		rd := func(p, d string) string {
			fmt.Printf("%s [%s]: ", p, d)
			if l, _ := r.ReadString('\n'); strings.TrimSpace(l) != "" {
				s := strings.TrimSpace(l)
				if strings.HasPrefix(s, "~/") {
					h, _ := os.UserHomeDir()
					return h + s[1:]
				}
				return s
			}
			return d
		}
		yn := func(p string, d bool) bool {
			def := "n"
			if d {
				def = "y"
			}
			return strings.HasPrefix(strings.ToLower(rd(p, def)), "y")
		}
		c.Path, c.SDLInclude = rd("Path", c.Path), rd("SDLInclude", c.SDLInclude)
		c.NoFrame, c.NoCursor = yn("NoFrame", c.NoFrame), yn("NoCursor", c.NoCursor)
		err = c.save()
	case "init":
		cwd, _ := os.Getwd()
		name := filepath.Base(cwd)
		for _, t := range []struct{ f, c string }{
			{"main.go", exec_(mainTmpl, name)},
			{".gitignore", exec_(giTmpl, name)},
			{"go.mod", exec_(modTmpl, name)},
		} {
			// Never clobber existing sources
			if _, e := os.Stat(t.f); e != nil {
				os.WriteFile(t.f, []byte(t.c), 0644)
			}
		}
	case "build":
		err = build(c, os.Args[2:])
	case "run":
		tmp, _ := os.MkdirTemp("", "godos-*")
		defer os.RemoveAll(tmp)
		exe := filepath.Join(tmp, "game")
		if runtime.GOOS == "windows" {
			exe += ".exe"
		}
		if err = build(c, []string{"-o", exe}); err == nil {
			err = sh(exe, os.Args[2:], "", nil)
		}
	case "doctor":
		for _, p := range []struct{ n, p string }{
			{"dos.c", filepath.Join(c.source(), "dos.c")}, {"dos.h", filepath.Join(c.source(), "dos.h")},
		} {
			m := "✗"
			if _, e := os.Stat(p.p); e == nil {
				m = "✓"
			}
			fmt.Println(m, p.n)
		}
		for _, lib := range []string{"sdl2", "glew"} {
			m := "✗"
			if exec.Command("pkg-config", "--exists", lib).Run() == nil {
				m = "✓"
			}
			fmt.Println(m, lib)
		}
	case "env":
		fmt.Printf("DOSLIKE_PATH=%s\nCGO_CFLAGS=%s\nTAGS=%s\n", c.Path, cflags(c), tags(c))
	case "update":
		err = sh("git", []string{"-C", c.Path, "pull"}, "", nil)
	case "version":
		fmt.Println("godos " + version)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildArgs(c *cfg, args []string) []string {
	r := []string{"build", "-tags", tags(c)}
	for i, a := range args {
		if a == "-o" && i+1 < len(args) {
			r = append(r, "-o", args[i+1])
		}
	}
	return append(r, ".")
}

func build(c *cfg, args []string) error {
	if _, e := os.Stat(filepath.Join(c.source(), "dos.c")); e != nil {
		return fmt.Errorf("dos-like not found in %s, run godos setup", c.Path)
	}
	return sh("go", buildArgs(c, args), "", env(c))
}

func setup(c *cfg) error {
	if e, _ := os.ReadDir(c.Path); len(e) > 0 {
		return fmt.Errorf("%s not empty", c.Path)
	}
	if _, err := exec.LookPath("git"); err == nil {
		fmt.Println("Cloning...")
		if err := sh("git", []string{"clone", "--depth", "1", repo, c.Path}, "", nil); err != nil {
			return err
		}
	} else if err := download(c.Path); err != nil {
		return err
	}
	if err := c.save(); err != nil {
		return err
	}

	h, _ := os.UserHomeDir()
	rc := h + "/.zshrc"
	if strings.Contains(os.Getenv("SHELL"), "bash") {
		rc = h + "/.bashrc"
	}
	if d, _ := os.ReadFile(rc); !strings.Contains(string(d), "DOSLIKE_PATH") {
		f, _ := os.OpenFile(rc, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		fmt.Fprintf(f, "\nexport DOSLIKE_PATH=\"%s\"\n", c.Path)
		f.Close()
	}
	fmt.Println("✓ Done")
	return nil
}

func download(p string) error {
	tmp := filepath.Join(os.TempDir(), "dos-like.tar.gz")
	defer os.Remove(tmp)

	fmt.Println("Downloading...")
	resp, err := (&http.Client{Timeout: 10 * time.Minute}).Get(tarball)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: %s", resp.Status)
	}
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	n, _ := io.Copy(out, resp.Body)
	out.Close()
	fmt.Printf("%dMB\n", n/1024/1024)

	fmt.Println("Extracting...")
	os.MkdirAll(p, 0755)
	return sh("tar", []string{"xzf", tmp, "-C", p, "--strip-components=1"}, "", nil)
}

func exec_(t, name string) string {
	var b bytes.Buffer
	template.Must(template.New("").Parse(t)).Execute(&b, map[string]string{
		"Name": name, "Module": name, "Version": "v" + version,
	})
	return b.String()
}
