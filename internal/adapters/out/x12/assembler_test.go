package x12_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"shipnotice/internal/adapters/out/x12"
	"shipnotice/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2026, time.March, 15, 14, 30, 5, 0, time.UTC)

func assembleSingleBranch(t *testing.T) string {
	t.Helper()

	assembler := x12.NewAssembler("", "", "")
	document, err := assembler.Assemble(singleBranchShipment(t), "ACME", "RETAILCO", "102143059", generatedAt)
	require.NoError(t, err)
	return document
}

func segmentsOf(document string) []string {
	segments := strings.Split(document, x12.DefaultSegmentTerminator)
	return segments[:len(segments)-1]
}

func TestAssembler_Assemble(t *testing.T) {
	t.Run("document frame is complete and ordered", func(t *testing.T) {
		segments := segmentsOf(assembleSingleBranch(t))

		require.Len(t, segments, 23)
		assert.True(t, strings.HasPrefix(segments[0], "ISA*"))
		assert.True(t, strings.HasPrefix(segments[1], "GS*"))
		assert.Equal(t, "ST*856*102143059", segments[2])
		assert.Equal(t, "BSN*00*SHIP-ORD-001*20260315*1430", segments[3])
		assert.True(t, strings.HasPrefix(segments[len(segments)-3], "SE*"))
		assert.Equal(t, "GE*1*102143059", segments[len(segments)-2])
		assert.Equal(t, "IEA*1*102143059", segments[len(segments)-1])
	})

	t.Run("document ends with a terminator", func(t *testing.T) {
		document := assembleSingleBranch(t)

		assert.True(t, strings.HasSuffix(document, x12.DefaultSegmentTerminator))
	})

	t.Run("SE count covers ST through SE inclusive", func(t *testing.T) {
		segments := segmentsOf(assembleSingleBranch(t))

		var seIndex int
		for i, segment := range segments {
			if strings.HasPrefix(segment, "SE*") {
				seIndex = i
			}
		}
		stIndex := 2

		declared, err := strconv.Atoi(strings.Split(segments[seIndex], "*")[1])
		require.NoError(t, err)
		assert.Equal(t, seIndex-stIndex+1, declared)
	})

	t.Run("trailer control numbers echo the headers", func(t *testing.T) {
		segments := segmentsOf(assembleSingleBranch(t))

		isa := strings.Split(segments[0], "*")
		iea := strings.Split(segments[len(segments)-1], "*")
		assert.Equal(t, isa[13], iea[2])

		gs := strings.Split(segments[1], "*")
		ge := strings.Split(segments[len(segments)-2], "*")
		assert.Equal(t, gs[6], ge[2])

		st := strings.Split(segments[2], "*")
		var se []string
		for _, segment := range segments {
			if strings.HasPrefix(segment, "SE*") {
				se = strings.Split(segment, "*")
			}
		}
		require.NotNil(t, se)
		assert.Equal(t, st[2], se[2])
	})

	t.Run("totals report leaf count and shipment weight", func(t *testing.T) {
		segments := segmentsOf(assembleSingleBranch(t))

		assert.Contains(t, segments, "CTT*1***50.00*LB")
	})

	t.Run("every HL parent names its containing node", func(t *testing.T) {
		segments := segmentsOf(assembleSingleBranch(t))

		seen := map[string]bool{}
		roots := 0
		for _, segment := range segments {
			if !strings.HasPrefix(segment, "HL*") {
				continue
			}
			fields := strings.Split(segment, "*")
			if fields[2] == "" {
				roots++
			} else {
				assert.True(t, seen[fields[2]], "parent %s referenced before definition", fields[2])
			}
			seen[fields[1]] = true
		}
		assert.Equal(t, 1, roots)
	})

	t.Run("empty control number defaults from the generation timestamp", func(t *testing.T) {
		assembler := x12.NewAssembler("", "", "")

		document, err := assembler.Assemble(singleBranchShipment(t), "ACME", "RETAILCO", "", generatedAt)

		require.NoError(t, err)
		assert.Contains(t, document, "ST*856*315143005")
		assert.Contains(t, document, "IEA*1*315143005")
	})

	t.Run("carton without container identifier fails before any output", func(t *testing.T) {
		carton := buildCarton(t, "CTN-0001", 1, buildLineItem(t, "SKU-100", 5))
		order, err := shipment.NewOrder("ORD-001", "PO-4567", []string{"CTN-0001"})
		require.NoError(t, err)
		s := buildShipment(t, []shipment.Order{order}, []*shipment.Carton{carton})

		assembler := x12.NewAssembler("", "", "")
		document, err := assembler.Assemble(s, "ACME", "RETAILCO", "1", generatedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CTN-0001")
		assert.Empty(t, document)
	})

	t.Run("custom terminator joins every record", func(t *testing.T) {
		assembler := x12.NewAssembler("\n", "", "")

		document, err := assembler.Assemble(singleBranchShipment(t), "ACME", "RETAILCO", "1", generatedAt)

		require.NoError(t, err)
		assert.Equal(t, 23, assembler.CountSegments(document))
		assert.True(t, strings.HasSuffix(document, "\n"))
	})
}

func TestAssembler_Utilities(t *testing.T) {
	assembler := x12.NewAssembler("", "", "")

	t.Run("CountSegments counts terminator occurrences", func(t *testing.T) {
		assert.Equal(t, 23, assembler.CountSegments(assembleSingleBranch(t)))
	})

	t.Run("FormatForDisplay numbers each segment", func(t *testing.T) {
		display := assembler.FormatForDisplay(assembleSingleBranch(t))

		lines := strings.Split(display, "\n")
		require.Len(t, lines, 23)
		assert.True(t, strings.HasPrefix(lines[0], "  1  ISA*"))
		assert.True(t, strings.HasPrefix(lines[22], " 23  IEA*"))
	})
}

func TestDeriveControlNumber(t *testing.T) {
	assert.Equal(t, "315143005", x12.DeriveControlNumber(generatedAt))
	assert.Len(t, x12.DeriveControlNumber(time.Now()), 9)
}
