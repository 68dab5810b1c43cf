/*
Package runner implements the interactive prompt loop and the session driver.

It acts as the bridge between the workflow engine (ports.Engine) and the terminal.
The prompt loop asks one field at a time, converts the raw line to a typed value,
validates it and loops until the answer is valid or the user types "back". The
Runner walks the workflow graph, keeps the history stack for back-navigation and
asks the engine for every transition.

# Key Components

  - PromptField: The per-field prompt/parse/validate loop.
  - ParseInput: Raw text to typed value conversion for every field type.
  - Runner: The session driver (history stack, back-navigation, summary).
  - TextHandler / JSONHandler: Line readers for interactive and scripted input.
  - View: Presentation strategy (TextView for terminals, JSONView for NDJSON).

# Usage

	r := runner.NewRunner(engine,
		runner.WithInput(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithView(runner.NewTextView(os.Stdout)),
	)

	outcome, err := r.Run(ctx, workflow)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outcome.Data.Len(), "answers")
*/
package runner
