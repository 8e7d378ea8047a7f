package envbind

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envbind/pkg/transform"
)

// manifest is the YAML shape of a binding manifest:
//
//	bindings:
//	  - key: db_pool_size
//	    env: DB_POOL_SIZE
//	    transform: int
//	    default: "10"
type manifest struct {
	Bindings []manifestBinding `yaml:"bindings"`
}

type manifestBinding struct {
	Key       string `yaml:"key"`
	Env       string `yaml:"env"`
	Transform string `yaml:"transform"`
	Default   any    `yaml:"default"`
}

// BindManifest reads a YAML binding manifest from path and applies its
// declarations with BindAll semantics: in order, stopping at the first
// resolution failure, keeping everything resolved before it.
//
// Each entry requires key and env; transform accepts the textual names
// understood by transform.ParseKind. String defaults pass through the
// transform like environment values, while typed YAML defaults (numbers,
// booleans) are stored as-is. Function transforms carry Go values and
// cannot appear in manifests.
func (b *Binder) BindManifest(app, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrManifestRead, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errors.Join(ErrManifestParse, err)
	}

	decls := make([]Decl, 0, len(m.Bindings))
	for i, mb := range m.Bindings {
		if mb.Key == "" || mb.Env == "" {
			return errors.Join(ErrManifestInvalid, fmt.Errorf("binding %d: key and env are required", i))
		}

		kind, err := transform.ParseKind(mb.Transform)
		if err != nil {
			return errors.Join(ErrManifestInvalid, fmt.Errorf("binding %d (%s)", i, mb.Key), err)
		}

		decls = append(decls, Decl{
			ConfigKey: mb.Key,
			EnvKey:    mb.Env,
			Default:   mb.Default,
			Transform: transform.Spec{Kind: kind},
		})
	}

	return b.BindAll(app, decls...)
}
