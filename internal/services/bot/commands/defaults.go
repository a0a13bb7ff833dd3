package commands

// Default returns the registry for the commands the bot ships with.
func Default(roller DiceRoller, emojifier Emojifier, rollMaxTimes int) *Registry {
	registry, err := NewRegistry(
		Ping{},
		NewRoll(roller, rollMaxTimes),
		NewEmojify(emojifier),
	)
	if err != nil {
		panic(err)
	}
	return registry
}
