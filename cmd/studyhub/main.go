package main

import "github.com/srujankaleru2007/StudyHub/cmd/studyhub/root"

func main() {
	root.Execute()
}
