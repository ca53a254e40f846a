package main

import (
	"math"
)

// add new funtions in this file
// also need to add them to the ops table in models.go

const (
	snapTolerance = 1e-5 // trig results this close to an integer become that integer
	maxFactorial  = 20   // 21! does not fit in a uint64
)

// plain adapts a function that can not fail to the unary applier signature.
func plain(f func(float64) float64) func(float64) (float64, error) {
	return func(a float64) (float64, error) {
		return f(a), nil
	}
}

func add(a, b float64) float64 {
	return a + b
}

func sub(a, b float64) float64 {
	return a - b
}

func mult(a, b float64) float64 {
	return a * b
}

func div(a, b float64) float64 {
	return a / b
}

func pow(a, b float64) float64 {
	return math.Pow(a, b)
}

// snap removes floating noise such as sin(180) = 1.2e-16
func snap(a float64) float64 {
	r := math.Round(a)
	if math.Abs(a-r) < snapTolerance {
		return r
	}
	return a
}

func rad(a float64) float64 {
	return (a / 180) * math.Pi
}

func deg(a float64) float64 {
	return (180 / math.Pi) * a
}

func sind(a float64) float64 { // returns sin(a) where a is in degrees
	return snap(math.Sin(rad(a)))
}

func cosd(a float64) float64 { // returns cos(a) where a is in degrees
	return snap(math.Cos(rad(a)))
}

func tand(a float64) float64 { // returns tan(a) where a is in degrees
	return snap(math.Tan(rad(a)))
}

func cotd(a float64) float64 {
	return snap(math.Cos(rad(a)) / math.Sin(rad(a)))
}

func secd(a float64) float64 {
	return snap(1 / math.Cos(rad(a)))
}

func cscd(a float64) float64 {
	return snap(1 / math.Sin(rad(a)))
}

func asind(a float64) float64 { // returns arcsin(a) in degrees
	return snap(deg(math.Asin(a)))
}

func acosd(a float64) float64 { // returns arccos(a) in degrees
	return snap(deg(math.Acos(a)))
}

func atand(a float64) float64 { // returns arctan(a) in degrees
	return snap(deg(math.Atan(a)))
}

func acotd(a float64) float64 {
	return snap(deg(math.Acos(a / math.Sqrt(1+a*a))))
}

func asecd(a float64) float64 {
	return snap(deg(math.Acos(1 / a)))
}

func acscd(a float64) float64 {
	return snap(deg(math.Asin(1 / a)))
}

// factorial rounds a to the nearest integer first. Negative values and
// NaN count as 0.
func factorial(a float64) (float64, error) {
	n := math.Round(a)
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	if n > maxFactorial {
		return math.NaN(), factorialOverflow(n)
	}
	return float64(factorialInt(uint64(n))), nil
}

func factorialInt(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return n * factorialInt(n-1)
}
