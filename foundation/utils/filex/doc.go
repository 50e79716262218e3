// Package filex provides the file system helpers used to prepare isolated
// working copies of a project.
//
//	dir, err := filex.TempDir("tmplcheck-*")
//	if err != nil {
//		return err
//	}
//	defer filex.RemoveAll(dir)
//
//	n, err := filex.CopyTree("./project", dir, filex.TreeCopyOptions{
//		Exclude: []string{".git", ".venv", "__pycache__"},
//	})
package filex
