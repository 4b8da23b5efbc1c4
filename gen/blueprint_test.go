package gen

import (
	"reflect"
	"testing"

	"github.com/nexus4812/php-class-gen/php"
)

func TestBlueprint_ValueSemantics(t *testing.T) {
	base := NewBlueprint(`App\User`, php.KindClass)
	withImports := base.WithImports(`App\Contracts\HasId`)

	if len(base.Imports()) != 0 {
		t.Error("WithImports must not mutate the receiver")
	}
	if got := withImports.Imports(); !reflect.DeepEqual(got, []string{`App\Contracts\HasId`}) {
		t.Errorf("Imports() = %v", got)
	}

	// Appending to one branch must not leak into a sibling branch
	a := withImports.WithImports(`A\A`)
	b := withImports.WithImports(`B\B`)
	if reflect.DeepEqual(a.Imports(), b.Imports()) {
		t.Error("sibling blueprints should have diverged import lists")
	}
}

func TestBlueprint_ImportDeduplication(t *testing.T) {
	bp := NewBlueprint(`App\User`, php.KindClass).
		WithImports(`A\B`, `C\D`, `A\B`, "").
		WithImports(`C\D`, `E\F`)

	want := []string{`A\B`, `C\D`, `E\F`}
	if got := bp.Imports(); !reflect.DeepEqual(got, want) {
		t.Errorf("Imports() = %v, want %v", got, want)
	}
}

func TestBlueprint_SelfImportSkipped(t *testing.T) {
	bp := NewBlueprint(`App\User`, php.KindClass).WithImports(`App\User`, `App\Other`)

	want := []string{`App\Other`}
	if got := bp.Imports(); !reflect.DeepEqual(got, want) {
		t.Errorf("Imports() = %v, want %v", got, want)
	}
}

func TestBlueprint_NameSplitting(t *testing.T) {
	bp := NewBlueprint(`App\Models\User`, php.KindClass)
	if bp.Namespace() != `App\Models` {
		t.Errorf("Namespace() = %q", bp.Namespace())
	}
	if bp.ShortName() != "User" {
		t.Errorf("ShortName() = %q", bp.ShortName())
	}

	global := NewBlueprint("Thing", php.KindClass)
	if global.Namespace() != "" {
		t.Errorf("namespace-less name should have empty namespace, got %q", global.Namespace())
	}
	if global.ShortName() != "Thing" {
		t.Errorf("ShortName() = %q", global.ShortName())
	}
}

func TestBlueprint_KindFixedAtConstruction(t *testing.T) {
	bp := NewBlueprint(`App\User`, php.KindInterface)
	after := bp.WithImports(`A\B`).WithStructure(func(t php.Type) php.Type { return t })

	if after.Kind() != php.KindInterface {
		t.Errorf("Kind() = %q after configuration, want interface", after.Kind())
	}
}
