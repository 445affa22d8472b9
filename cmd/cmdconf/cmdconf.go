// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package cmdconf

import (
	"bytes"
	"text/template"

	"vuvuzela.io/alpenhorn/errors"

	"github.com/ChiralMichael/framework/dist"
)

// TableConfig configures the dist-table tool: which distribution to
// evaluate, over which integer window, and in which locale to render
// numbers.
type TableConfig struct {
	// Kind selects the distribution: "symgeom", "geometric",
	// "uniform", "hypergeometric", or "constant".
	Kind string

	// P is the success probability (symgeom, geometric).
	P float64

	// A and B bound the uniform window.
	A int
	B int

	// Pop, Succ, and Draws parameterize the hypergeometric.
	Pop   int
	Succ  int
	Draws int

	// Value locates the constant point mass.
	Value int

	Lo int
	Hi int

	Locale string
}

func NewTableConfig() *TableConfig {
	return &TableConfig{
		Kind: "symgeom",
		P:    0.5,

		Lo: -10,
		Hi: 10,

		Locale: "en",
	}
}

func (c *TableConfig) Validate() error {
	switch c.Kind {
	case "symgeom", "geometric", "uniform", "hypergeometric", "constant":
	default:
		return errors.New("unknown distribution kind: %q", c.Kind)
	}
	if c.Hi < c.Lo {
		return errors.New("table window [%d, %d] is empty", c.Lo, c.Hi)
	}
	if width := uint64(c.Hi) - uint64(c.Lo); width >= 1<<20 {
		return errors.New("table window [%d, %d] too large", c.Lo, c.Hi)
	}
	if c.Locale == "" {
		return errors.New("empty locale")
	}
	return nil
}

// Build constructs the configured distribution. Parameter-domain
// errors surface from the dist constructors.
func (c *TableConfig) Build() (dist.Distribution, error) {
	switch c.Kind {
	case "symgeom":
		return dist.NewSymmetricGeometric(c.P)
	case "geometric":
		return dist.NewGeometric(c.P)
	case "uniform":
		return dist.NewUniform(c.A, c.B)
	case "hypergeometric":
		return dist.NewHypergeometric(c.Pop, c.Succ, c.Draws)
	case "constant":
		return dist.NewConstant(c.Value), nil
	default:
		return nil, errors.New("unknown distribution kind: %q", c.Kind)
	}
}

const tableTemplate = `# Distribution table config

kind = {{.Kind | printf "%q"}}

p = {{.P | printf "%0.2f"}}
a = {{.A}}
b = {{.B}}
pop = {{.Pop}}
succ = {{.Succ}}
draws = {{.Draws}}
value = {{.Value}}

lo = {{.Lo}}
hi = {{.Hi}}

locale = {{.Locale | printf "%q"}}
`

func (c *TableConfig) TOML() []byte {
	tmpl := template.Must(template.New("table").Parse(tableTemplate))

	buf := new(bytes.Buffer)
	err := tmpl.Execute(buf, c)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}
