// atlas-loader 輸出 models 對應的資料表結構，提供 atlas 產生 migration
//
//	atlas migrate diff --env gorm
package main

import (
	"fmt"
	"io"
	"os"

	"ariga.io/atlas-provider-gorm/gormschema"

	"folio/models"
)

func main() {
	dialect := "postgres"
	if len(os.Args) > 1 {
		dialect = os.Args[1]
	}
	stmts, err := gormschema.New(dialect).Load(models.All()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load gorm schema: %v\n", err)
		os.Exit(1)
	}
	io.WriteString(os.Stdout, stmts)
}
