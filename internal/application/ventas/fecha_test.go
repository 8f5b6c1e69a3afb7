package ventas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaDe_ConservaLaFechaLocalDeNoche(t *testing.T) {
	// 23:30 del 1 de marzo en UTC-6 ya es 2 de marzo en UTC; la fecha de la
	// nota debe seguir siendo el 1.
	zona := time.FixedZone("UTC-6", -6*3600)
	instante := time.Date(2026, 3, 1, 23, 30, 0, 0, zona)

	dia := diaDe(instante)

	assert.True(t, dia.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, zona)), "dia = %s", dia)
	assert.Equal(t, "2026-03-01", dia.Format("2006-01-02"))
}

func TestFechaODefault_ParseaYRechaza(t *testing.T) {
	fecha, err := fechaODefault("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", fecha.Format("2006-01-02"))

	_, err = fechaODefault("30/08/2026")
	assert.Error(t, err)
}
