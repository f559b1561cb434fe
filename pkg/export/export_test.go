package export

import (
	"bytes"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/unit"
)

func TestBoardFlatWorkbook(t *testing.T) {
	units := unit.Seed()
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, grid.New(units, grid.Options{}), units, unit.ShowNumber))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Board", UnitsSheet}, f.GetSheetList())

	rows, err := f.GetRows("Board")
	require.NoError(t, err)
	require.Equal(t, []string{"", "Section 1", "Section 2"}, rows[0])
	require.Equal(t, []string{"Floor 1", "101", "102"}, rows[1])
	require.Len(t, rows, 4)

	rows, err = f.GetRows(UnitsSheet)
	require.NoError(t, err)
	require.Equal(t, UnitsHeader, rows[0])
	require.Len(t, rows, 7)
	require.Equal(t, "sold", rows[2][7])
}

func TestBoardSectionedFreeOnly(t *testing.T) {
	units := unit.Generate(2, 2, 2)
	ix := grid.New(units, grid.Options{Layout: grid.Sectioned, FreeOnly: true})
	var buf bytes.Buffer
	require.NoError(t, Board(&buf, ix, units, unit.ShowArea))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{"Section 1", "Section 2", UnitsSheet}, f.GetSheetList())

	// Unit 4 (section 1, floor 2, stoak 2) is sold and hidden.
	v, err := f.GetCellValue("Section 1", "C2")
	require.NoError(t, err)
	require.Empty(t, v)
	v, err = f.GetCellValue("Section 1", "B2")
	require.NoError(t, err)
	require.Equal(t, "38m²", v)

	rows, err := f.GetRows(UnitsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 9)
}

func TestTintLightensStatusColors(t *testing.T) {
	for st, base := range statusColor {
		fill, err := Tint(base, tint)
		require.NoError(t, err, st)

		b, _ := colorful.Hex(base)
		c, err := colorful.Hex(fill)
		require.NoError(t, err, st)
		bl, _, _ := b.Lab()
		cl, _, _ := c.Lab()
		require.Greater(t, cl, bl, "%s fill should be lighter", st)
		require.Less(t, cl, 1.0, "%s fill should not be white", st)
	}

	same, err := Tint("#336699", 0)
	require.NoError(t, err)
	require.Equal(t, "#336699", same)

	_, err = Tint("green", tint)
	require.Error(t, err)
}
