package analysis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crntk/analysis"
)

func ExampleService_Analyze() {
	svc := analysis.NewService()
	rep, err := svc.Analyze(context.Background(), "E + S <-> ES -> E + P")
	if err != nil {
		panic(err)
	}

	fmt.Println("deficiency:", rep.Deficiency)
	for _, law := range rep.Laws {
		fmt.Println(law.Text)
	}
	// Output:
	// deficiency: 0
	// E + ES
	// ES + P + S
}
