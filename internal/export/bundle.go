package export

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// BundleFile un documento listo para empaquetar
type BundleFile struct {
	Name string
	Data []byte
}

// BuildZip empaqueta los documentos generados en un ZIP en memoria.
// Los nombres duplicados (dos cartas del mismo cliente y plantilla el
// mismo día no deberían darse, pero un lote manual puede traerlos) se
// desambiguan con un sufijo numérico.
func BuildZip(files []BundleFile) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	used := make(map[string]int)
	for _, f := range files {
		name := f.Name
		if n := used[name]; n > 0 {
			name = fmt.Sprintf("%d_%s", n+1, f.Name)
		}
		used[f.Name]++

		entry, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip: %w", err)
	}
	return buf.Bytes(), nil
}
