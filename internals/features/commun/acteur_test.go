// file: internals/features/commun/acteur_test.go
package commun

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminVoitEtModifieTout(t *testing.T) {
	a := Acteur{EstAdmin: true}
	require.True(t, a.PeutAccederChamp("13"))
	require.True(t, a.PeutModifier("13"))
}

func TestTableauSeulementLitSansModifier(t *testing.T) {
	a := Acteur{EstTableauSeulement: true}
	require.True(t, a.PeutAccederChamp("13"))
	require.False(t, a.PeutModifier("13"))
}

func TestStandardLimiteASesChamps(t *testing.T) {
	a := Acteur{ChampsAutorises: []string{"13", "21"}}
	require.True(t, a.PeutAccederChamp("13"))
	require.True(t, a.PeutModifier("21"))
	require.False(t, a.PeutAccederChamp("45"))
	require.False(t, a.PeutModifier("45"))
}

func TestStandardSansAcces(t *testing.T) {
	a := Acteur{}
	require.False(t, a.PeutAccederChamp("13"))
	require.False(t, a.PeutModifier("13"))
}
