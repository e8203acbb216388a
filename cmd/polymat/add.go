package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/polymat/matrix"
	"github.com/katalvlaran/polymat/render"
	"github.com/katalvlaran/polymat/source"
	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

// stdin is where prompted values are read from.
var stdin io.Reader = os.Stdin

var RowsFlag = cli.IntFlag{
	Name:  "rows",
	Usage: "number of rows of both operands",
	Value: 3,
}

var ColsFlag = cli.IntFlag{
	Name:  "cols",
	Usage: "number of columns of both operands",
	Value: 2,
}

var KindFlag = cli.StringFlag{
	Name:  "kind",
	Usage: "storage of the right operand: dynamic or fixed",
	Value: matrix.KindDynamic.String(),
}

var StrictFlag = cli.BoolFlag{
	Name:  "strict",
	Usage: "require both operands to share the same storage variant",
}

var PrecisionFlag = cli.IntFlag{
	Name:  "precision",
	Usage: "decimals printed per element",
	Value: render.DefaultPrecision,
}

// ValuesFlag supplies all elements of A then B, row-major, separated by
// spaces or commas.
var ValuesFlag = cli.StringFlag{
	Name:  "values",
	Usage: "element values for A then B (prompted on stdin when empty)",
}

var VerboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "log diagnostics to stderr",
}

func addAction(ctx *cli.Context) error {
	rows, cols := ctx.Int(RowsFlag.Name), ctx.Int(ColsFlag.Name)
	kind := ctx.String(KindFlag.Name)
	w := ctx.App.Writer

	myLog := log.WithFields(log.Fields{
		"rows": rows,
		"cols": cols,
		"kind": kind,
	})

	opts := []matrix.Option{matrix.WithLogger(myLog)}
	if ctx.Bool(StrictFlag.Name) {
		opts = append(opts, matrix.WithStrictPolicy())
	}
	precision := ctx.Int(PrecisionFlag.Name)
	if precision < 0 {
		return cli.NewExitError("precision must be >= 0", 2)
	}

	a, err := matrix.NewDynamic[float64](rows, cols, opts...)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	b, err := newOperand(kind, rows, cols, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	var src matrix.Source[float64]
	if vals := ctx.String(ValuesFlag.Name); vals != "" {
		src = source.NewReader[float64](strings.NewReader(strings.ReplaceAll(vals, ",", " ")))
	} else {
		src = source.NewPrompt[float64](stdin, w)
	}

	for _, op := range []struct {
		name string
		m    matrix.Matrix[float64]
	}{{"A", a}, {"B", b}} {
		fmt.Fprintf(w, ">> Loading %s matrix %s (%dx%d)\n", op.m.Kind(), op.name, rows, cols)
		if err = op.m.Populate(src); err != nil {
			return cli.NewExitError(fmt.Sprintf("matrix %s: %v", op.name, err), 1)
		}
	}

	myLog.Debug("adding matrices")
	sum, err := a.Add(b)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Fprintf(w, ">> A + B (%dx%d):\n", sum.Rows(), sum.Cols())
	return render.Write(w, sum, render.WithPrecision(precision))
}

// newOperand builds the right-hand operand in the requested storage.
func newOperand(kind string, rows, cols int, opts []matrix.Option) (matrix.Matrix[float64], error) {
	switch kind {
	case matrix.KindDynamic.String():
		return matrix.NewDynamic[float64](rows, cols, opts...)
	case matrix.KindFixed.String():
		return matrix.NewFixed[float64](rows, cols, opts...)
	default:
		return nil, fmt.Errorf("unknown kind %q (want %s or %s)", kind, matrix.KindDynamic, matrix.KindFixed)
	}
}
