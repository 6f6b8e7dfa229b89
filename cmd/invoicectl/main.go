package main

import "github.com/SscSPs/invoice_form_app/internal/cli"

func main() {
	cli.Execute()
}
