// Package cli implements the interactive todocards client: a line-oriented
// REPL over the board view-model, plus a background watcher that tracks
// whether the server is reachable.
//
// Commands
//
//	help                      show available commands
//	list                      show all cards
//	new [title]               create a card
//	title <n> <text>          rename card n locally
//	edit <n> <slot> [text]    set todo slot of card n locally
//	check <n> <slot>          toggle a todo and save at once
//	save <n>                  push local edits of card n
//	delete <n>                delete card n
//	labels <n> [names...]     replace the labels of card n
//	export                    export all cards and print a download link
//	reload                    fetch the board from the server
//	exit | quit               leave the program
//
// Cards and slots are numbered from 1.
package cli
