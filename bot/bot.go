package bot

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/lit"

	"github.com/AriusX7/advart/config"
	"github.com/AriusX7/advart/db"
	"github.com/AriusX7/advart/handler/art"
	"github.com/AriusX7/advart/ledger"
)

var dg *discordgo.Session

// Start wires the store, ledger and handlers together and runs the bot
// until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		lit.Error("error loading config: %s", err)
		return
	}

	store, err := db.Open(config.Cfg.Database)
	if err != nil {
		lit.Error("error opening database: %s", err)
		return
	}
	defer store.Close()

	art.RegisterHandlers(ledger.New(store))

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		lit.Error("error creating Discord session: %s", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		lit.Error("error opening connection: %s", err)
		return
	}

	lit.Info("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
