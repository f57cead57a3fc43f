package services

var defaultQuotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Well done is better than well said.", Author: "Benjamin Franklin"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{Text: "Done is better than perfect.", Author: "Sheryl Sandberg"},
	{Text: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{Text: "What gets measured gets managed.", Author: "Peter Drucker"},
	{Text: "Small deeds done are better than great deeds planned.", Author: "Peter Marshall"},
	{Text: "Amateurs sit and wait for inspiration, the rest of us just get up and go to work.", Author: "Stephen King"},
}
