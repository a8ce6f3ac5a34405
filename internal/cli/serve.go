package cli

import (
	"github.com/spf13/cobra"
	"pxsteg/internal/server"
	"pxsteg/pkg/config"
)

func ServeAppCommand() *cobra.Command {
	var sConfig config.ServerConfig

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to perform steganography over the web",
		Example: "pxsteg serve --port 8888 --allowed-origins http://localhost:3000",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(sConfig)
		},
	}

	command.Flags().StringVar(&sConfig.Port, "port", "", "Port on which to start the server. Defaults to PXSTEG_PORT, then PORT, then "+config.DefaultPort)
	command.Flags().StringSliceVar(&sConfig.AllowedOrigins, "allowed-origins", []string{"*"}, "Origins allowed by CORS")
	command.Flags().Int64Var(&sConfig.MaxRequestBytes, "max-request-bytes", config.DefaultMaxRequestBytes, "Maximum request body size in bytes, 0 disables the limit")
	command.Flags().IntVar(&sConfig.MaxCoverPixels, "max-cover-pixels", 50_000_000, "Maximum width*height of a supplied image, 0 disables the limit")
	command.Flags().IntVar(&sConfig.MaxRevealedBytes, "max-revealed-bytes", 0, "Maximum decompressed size of a revealed payload, 0 scales the limit with the image size")

	return command
}
