// Package main provides the spr command, which converts State Program
// Report XML exports into CSV trees and publishes them.
package main

func main() {
	Execute()
}
