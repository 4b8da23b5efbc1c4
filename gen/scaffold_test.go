package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus4812/php-class-gen/errors"
	"github.com/nexus4812/php-class-gen/php"
)

func TestScaffoldSpec_Class(t *testing.T) {
	spec := ScaffoldSpec{
		Kind:       php.KindClass,
		Name:       `App\Models\User`,
		Fields:     ParseFieldList(`id:int,address:App\Models\Address`),
		Implements: []string{`App\Contracts\HasId`},
		Final:      true,
		Construct:  true,
		Getters:    true,
	}
	require.NoError(t, spec.Validate())

	artifact, err := spec.Builder().Build(NewAssembler(true))
	require.NoError(t, err)

	assert.Contains(t, artifact.Content, "final class User implements HasId")
	assert.Contains(t, artifact.Content, "private int $id;")
	assert.Contains(t, artifact.Content, "private Address $address;")
	assert.Contains(t, artifact.Content, "public function __construct(int $id, Address $address)")
	assert.Contains(t, artifact.Content, "$this->id = $id;")
	assert.Contains(t, artifact.Content, "public function getId(): int")
	assert.Contains(t, artifact.Content, "public function getAddress(): Address")
	assert.Contains(t, artifact.Content, `use App\Contracts\HasId;`)
	assert.Contains(t, artifact.Content, `use App\Models\Address;`)
}

func TestScaffoldSpec_Interface(t *testing.T) {
	spec := ScaffoldSpec{
		Kind:   php.KindInterface,
		Name:   `App\Contracts\HasId`,
		Fields: ParseFieldList("id:int"),
	}
	require.NoError(t, spec.Validate())

	artifact, err := spec.Builder().Build(NewAssembler(true))
	require.NoError(t, err)

	assert.Contains(t, artifact.Content, "interface HasId")
	assert.Contains(t, artifact.Content, "public function getId(): int;")
}

func TestScaffoldSpec_BackedEnum(t *testing.T) {
	spec := ScaffoldSpec{
		Kind:    php.KindEnum,
		Name:    `App\Status`,
		Backing: "string",
		Cases:   ParseFieldList("Active:'active',Archived:'archived'"),
	}
	require.NoError(t, spec.Validate())

	artifact, err := spec.Builder().Build(NewAssembler(true))
	require.NoError(t, err)

	assert.Contains(t, artifact.Content, "enum Status: string")
	assert.Contains(t, artifact.Content, "case Active = 'active';")
	assert.Contains(t, artifact.Content, "case Archived = 'archived';")
}

func TestScaffoldSpec_Trait(t *testing.T) {
	spec := ScaffoldSpec{
		Kind:    php.KindTrait,
		Name:    `App\Concerns\Timestamps`,
		Fields:  ParseFieldList(`createdAt:App\Support\Clock`),
		Getters: true,
	}
	require.NoError(t, spec.Validate())

	artifact, err := spec.Builder().Build(NewAssembler(true))
	require.NoError(t, err)

	assert.Contains(t, artifact.Content, "trait Timestamps")
	assert.Contains(t, artifact.Content, "public function getCreatedAt(): Clock")
	assert.Contains(t, artifact.Content, `use App\Support\Clock;`)
}

func TestScaffoldSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ScaffoldSpec
		wantErr bool
	}{
		{"valid class", ScaffoldSpec{Kind: php.KindClass, Name: `A\B`}, false},
		{"missing name", ScaffoldSpec{Kind: php.KindClass}, true},
		{"bad kind", ScaffoldSpec{Kind: php.Kind("struct"), Name: `A\B`}, true},
		{"cases on a class", ScaffoldSpec{Kind: php.KindClass, Name: `A\B`, Cases: []Field{{"X", "'x'"}}}, true},
		{"backing on a trait", ScaffoldSpec{Kind: php.KindTrait, Name: `A\B`, Backing: "int"}, true},
		{"extends on a trait", ScaffoldSpec{Kind: php.KindTrait, Name: `A\B`, Extends: `A\C`}, true},
		{"extends on an interface", ScaffoldSpec{Kind: php.KindInterface, Name: `A\B`, Extends: `A\C`}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsConfigError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
