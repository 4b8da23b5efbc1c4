package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/psr4"
)

// End-to-end: two related artifacts through builder, project, assembler,
// and resolver.
func TestPipeline_ClassAndInterfaceBatch(t *testing.T) {
	user := NewClass(`Ns\User`).WithStructure(ClassStructure(func(c *php.ClassType) *php.ClassType {
		return c.
			AddImplement(`Ns\Contracts\HasId`).
			AddProperty(php.NewProperty("address", `Ns\Models\Address`)).
			AddMethod(php.NewMethod("getId").SetReturnType("int").AddBody("return $this->id;"))
	}))

	hasID := NewInterface(`Ns\Contracts\HasId`).WithStructure(InterfaceStructure(func(i *php.InterfaceType) *php.InterfaceType {
		return i.AddMethod(php.NewMethod("getId").SetReturnType("int"))
	}))

	artifacts, err := NewProject().Add(user).Add(hasID).Build(NewAssembler(true))
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	userFile := artifacts[0].File
	assert.Equal(t, []string{`Ns\Contracts\HasId`, `Ns\Models\Address`}, user.Blueprint().Imports())
	assert.Contains(t, userFile.Content, `use Ns\Contracts\HasId;`)
	assert.Contains(t, userFile.Content, `use Ns\Models\Address;`)
	assert.Contains(t, userFile.Content, "class User implements HasId")
	assert.Contains(t, userFile.Content, "private Address $address;")
	assert.Contains(t, userFile.Content, "declare(strict_types=1);")

	ifaceFile := artifacts[1].File
	assert.Contains(t, ifaceFile.Content, "interface HasId")
	assert.Contains(t, ifaceFile.Content, "public function getId(): int;")
	assert.NotContains(t, ifaceFile.Content, "use ", "interface references nothing external")

	resolver := psr4.NewResolver(map[string]string{`Ns\`: "src"}, nil, "")
	require.NoError(t, resolver.Validate())
	assert.Equal(t, "src/User.php", resolver.ResolveFile(userFile.QualifiedName))
	assert.Equal(t, "src/Contracts/HasId.php", resolver.ResolveFile(ifaceFile.QualifiedName))
}

func TestPipeline_DeterministicAcrossRuns(t *testing.T) {
	build := func() string {
		builder := NewClass(`App\Order`).WithStructure(ClassStructure(func(c *php.ClassType) *php.ClassType {
			for _, f := range ParseFieldList(`id:int,lines:array<int,App\OrderLine>,customer:App\Customer`) {
				c.AddProperty(php.NewProperty(f.Name, f.Type))
			}
			return c
		}))
		artifacts, err := NewProject().Add(builder).Build(NewAssembler(true))
		require.NoError(t, err)
		return artifacts[0].File.Content
	}

	first := build()
	second := build()
	assert.Equal(t, first, second, "identical input must yield byte-identical output")

	// Harvested imports keep field order
	idx1 := strings.Index(first, `use App\OrderLine;`)
	idx2 := strings.Index(first, `use App\Customer;`)
	require.True(t, idx1 >= 0 && idx2 >= 0, "both imports expected:\n%s", first)
	assert.Less(t, idx1, idx2)
}

func TestPipeline_GlobalNamespaceArtifact(t *testing.T) {
	builder := NewClass("Standalone")
	artifacts, err := NewProject().Add(builder).Build(NewAssembler(false))
	require.NoError(t, err)

	content := artifacts[0].File.Content
	assert.NotContains(t, content, "namespace ")

	resolver := psr4.NewResolver(map[string]string{`App\`: "app"}, nil, "src")
	assert.Equal(t, "src/Standalone.php", resolver.ResolveFile("Standalone"))
}
