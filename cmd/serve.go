package cmd

import (
	"fmt"

	"github.com/intelligrit/geodis/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the disambiguation engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		dict, err := loadDictionary()
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d gazetteer locations\n", dict.Len())

		srv := &server.Server{
			Dict:  dict,
			Addr:  fmt.Sprintf("%s:%d", serveHost, servePort),
			Limit: server.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.Burst),
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
