package aligndist_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/aligndist"
	"github.com/hupe1980/aligndist/localdist"
	"github.com/hupe1980/aligndist/lowmem"
	"github.com/hupe1980/aligndist/tensor"
)

// Example_computeDist demonstrates the euclidean distance matrix between two sets of global features.
func Example_computeDist() {
	ctx := context.Background()
	e := aligndist.New()

	query, _ := tensor.FromRows([][]float32{{0, 0}, {1, 0}})
	gallery, _ := tensor.FromRows([][]float32{{0, 0}, {0, 1}})

	d, err := e.ComputeDist(ctx, query, gallery, "euclidean")
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < d.Dim(0); i++ {
		fmt.Printf("%.4f %.4f\n", d.At(i, 0), d.At(i, 1))
	}
	// Output:
	// 0.0000 1.0000
	// 1.0000 1.4142
}

// Example_localDist demonstrates the aligned distance between two objects made of local parts.
func Example_localDist() {
	ctx := context.Background()
	e := aligndist.New()

	x, _ := tensor.New([]float32{0, 0, 1, 0}, 1, 2, 2)
	y, _ := tensor.New([]float32{0, 0, 0, 1}, 1, 2, 2)

	d, err := e.LocalDist(ctx, x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("shape=%v dist=%.4f\n", d.Shape(), d.At(0, 0))
	// Output: shape=[1 1] dist=1.0710
}

// Example_lowMemoryMatrixOp demonstrates evaluating a distance matrix in blocks of gallery objects.
func Example_lowMemoryMatrixOp() {
	ctx := context.Background()
	metrics := &aligndist.BasicMetricsCollector{}
	e := aligndist.New(aligndist.WithMetricsCollector(metrics))

	data := make([]float32, 6*3*4)
	for i := range data {
		data[i] = float32(i%7) / 7
	}
	x, _ := tensor.New(data[:2*3*4], 2, 3, 4)
	y, _ := tensor.New(data, 6, 3, 4)

	d, err := e.LowMemoryMatrixOp(ctx, x, y, localdist.Parallel, lowmem.SplitY, 0, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("shape:", d.Shape())
	fmt.Println("parts:", metrics.GetStats().MatrixOpParts)
	// Output:
	// shape: [2 6]
	// parts: 3
}
