package gen

import (
	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

// Assembler turns a finished Blueprint into a file artifact. The default
// implementation is PhpAssembler; tests substitute their own.
type Assembler interface {
	Assemble(Blueprint) (*writer.FileArtifact, error)
}

// PhpAssembler instantiates the real structural instance for a blueprint,
// applies the stored structural function, and renders PHP source through
// the printer. Global settings (strict_types, header comment) are applied
// here rather than in the builder so every artifact in a run shares them.
type PhpAssembler struct {
	printer     *php.Printer
	strictTypes bool
	header      string
}

// NewAssembler creates an assembler. strictTypes controls the
// declare(strict_types=1) preamble on every generated file.
func NewAssembler(strictTypes bool) *PhpAssembler {
	return &PhpAssembler{
		printer:     php.NewPrinter(),
		strictTypes: strictTypes,
	}
}

// SetHeader sets a comment rendered at the top of every generated file.
func (a *PhpAssembler) SetHeader(header string) *PhpAssembler {
	a.header = header
	return a
}

// Assemble builds the structural instance, runs the blueprint's structural
// function against it, and renders the file.
func (a *PhpAssembler) Assemble(bp Blueprint) (*writer.FileArtifact, error) {
	if !bp.Kind().Valid() {
		return nil, errors.NewConfigError("unknown artifact kind %q for %s", bp.Kind(), bp.QualifiedName())
	}
	if bp.ShortName() == "" {
		return nil, errors.NewConfigError("artifact has an empty name")
	}

	instance := php.NewType(bp.Kind(), bp.ShortName())
	if fn := bp.Structure(); fn != nil {
		configured := fn(instance)
		if configured != nil {
			instance = configured
		}
	}

	file := &php.File{
		Namespace:   bp.Namespace(),
		Imports:     bp.Imports(),
		StrictTypes: a.strictTypes,
		Header:      a.header,
		Type:        instance,
	}

	return &writer.FileArtifact{
		QualifiedName: bp.QualifiedName(),
		Namespace:     bp.Namespace(),
		Name:          bp.ShortName(),
		Content:       a.printer.PrintFile(file),
	}, nil
}
