package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	ModuleName  string
	SiteName    string
}

func newNewCommand() *cobra.Command {
	var skipTidy bool

	cmd := &cobra.Command{
		Use:     "new <name>",
		Short:   "Create a new folio site",
		Example: "  folio new mysite\n  folio new github.com/user/mysite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := runNew(cmd.OutOrStdout(), args[0], ".")
			if err != nil {
				return err
			}
			if !skipTidy {
				tidy(cmd, dir)
			}
			printNextSteps(cmd.OutOrStdout(), filepath.Base(dir))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipTidy, "skip-tidy", false, "Do not run go mod tidy in the new project")
	return cmd
}

// runNew renders the scaffold templates into parent/<last segment of name>
// and returns the project directory.
func runNew(out io.Writer, name, parent string) (string, error) {
	dirName := path.Base(name)
	if dirName == "." || dirName == "/" || dirName == "" {
		return "", fmt.Errorf("invalid project name %q", name)
	}
	dir := filepath.Join(parent, dirName)

	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("directory %q already exists", dir)
	}

	data := scaffoldData{
		ProjectName: dirName,
		ModuleName:  name,
		SiteName:    toTitle(dirName),
	}

	fmt.Fprintf(out, "Creating new folio site: %s\n\n", dirName)

	const root = "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		outPath := strings.TrimSuffix(filepath.Join(dir, filepath.FromSlash(rel)), ".tmpl")

		// Dotfiles are stored without the dot.
		switch filepath.Base(outPath) {
		case "dotenv":
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		case "gitignore":
			outPath = filepath.Join(filepath.Dir(outPath), ".gitignore")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		src, err := scaffold.Templates.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		tmpl, err := template.New(path.Base(p)).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", p, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", p, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return "", err
	}
	return dir, nil
}

// tidy resolves dependencies and generates go.sum. A failure only warns.
func tidy(cmd *cobra.Command, dir string) {
	fmt.Fprintln(cmd.OutOrStdout(), "\nResolving Go dependencies...")
	c := exec.CommandContext(commandContext(cmd), "go", "mod", "tidy")
	c.Dir = dir
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()
	if err := c.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nWarning: go mod tidy failed: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Run 'cd %s && go mod tidy' manually after fixing.\n", dir)
	}
}

func printNextSteps(out io.Writer, dirName string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dirName)
	fmt.Fprintln(out, "  cp .env.example .env")
	fmt.Fprintln(out, "  go run .")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Write posts under content/blog/ and projects under content/projects/.")
	fmt.Fprintln(out, "Set ADMIN_PASSWORD and ADMIN_SESSION_SECRET in .env for production.")
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-site" -> "My Site", "mysite" -> "Mysite"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
