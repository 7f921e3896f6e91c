package main

import "github.com/bhyunvin/TO-DO-list-sub001/internal/app"

func main() {
	err := app.NewTodoApp().Run()
	if err != nil {
		panic(err)
	}
}
