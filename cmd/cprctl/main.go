// cprctl tareas de operación: esquema de base de datos, limpieza de pedidos
// duplicados y emisión de tokens.
//
// Uso:
//
//	cprctl migrate
//	cprctl reconcile [--dry-run]
//	cprctl token --user ana --role admin
//	cprctl hash-key <clave>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
