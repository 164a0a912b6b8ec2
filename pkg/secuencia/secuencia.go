// Package secuencia genera códigos correlativos de ancho fijo con ceros a la
// izquierda ("001", "002", ... "010"), el formato de identificador legible que
// usan los catálogos (empresas, emisores, turnos, responsables, consumidores).
package secuencia

import (
	"fmt"
	"strconv"
	"strings"
)

// Siguiente calcula el código que sigue a `ultimo` en una secuencia de ancho
// fijo. Con `ultimo` vacío devuelve el primer código de la secuencia ("001"
// para ancho 3). Retorna error si `ultimo` no es numérico o si la secuencia
// se agotó (999 -> no hay siguiente de ancho 3).
func Siguiente(ultimo string, ancho int) (string, error) {
	if ancho <= 0 {
		return "", fmt.Errorf("secuencia: ancho inválido %d", ancho)
	}
	if ultimo == "" {
		return Formatear(1, ancho)
	}
	n, err := strconv.Atoi(strings.TrimSpace(ultimo))
	if err != nil {
		return "", fmt.Errorf("secuencia: código %q no es numérico", ultimo)
	}
	return Formatear(n+1, ancho)
}

// Formatear rellena n con ceros a la izquierda hasta el ancho indicado.
// Retorna error si n no cabe en el ancho (desborde de la secuencia).
func Formatear(n, ancho int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("secuencia: valor inválido %d", n)
	}
	s := strconv.Itoa(n)
	if len(s) > ancho {
		return "", fmt.Errorf("secuencia: %d desborda el ancho %d", n, ancho)
	}
	return strings.Repeat("0", ancho-len(s)) + s, nil
}
