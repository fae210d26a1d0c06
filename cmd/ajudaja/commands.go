package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/filter"
	"github.com/rsilvagit/ajudaja/internal/form"
	"github.com/rsilvagit/ajudaja/internal/model"
	"github.com/rsilvagit/ajudaja/internal/output"
	"github.com/rsilvagit/ajudaja/internal/submit"
	"github.com/rsilvagit/ajudaja/internal/tui"
)

const previewTimeout = 10 * time.Second

func listCmd() *cobra.Command {
	var (
		opts     filter.Options
		featured bool
		telegram bool
		discord  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista oportunidades, com filtros opcionais",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opps := app.catalog.FetchAll(app.ctx)
			if featured {
				opps = app.catalog.FetchFeatured(app.ctx)
			}
			opps = filter.Apply(opps, opts)
			app.logger.Debug("Filtered opportunities",
				zap.String("category", opts.Category),
				zap.String("state", opts.State),
				zap.String("query", opts.Query),
				zap.Int("count", len(opps)),
			)

			writers := []output.ResultWriter{output.NewConsolePrinter(cmd.OutOrStdout())}
			if telegram {
				if app.cfg.Telegram.Token == "" || app.cfg.Telegram.ChatID == "" {
					return fmt.Errorf("--telegram requires TELEGRAM_TOKEN and TELEGRAM_CHAT_ID")
				}
				writers = append(writers, output.NewTelegramWriter(app.cfg.Telegram.Token, app.cfg.Telegram.ChatID))
			}
			if discord {
				if app.cfg.Discord.WebhookURL == "" {
					return fmt.Errorf("--discord requires DISCORD_WEBHOOK_URL")
				}
				writers = append(writers, output.NewDiscordWriter(app.cfg.Discord.WebhookURL))
			}

			for _, w := range writers {
				if err := w.WriteOpportunities(opps); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Erro ao exibir resultados: %v\n", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d oportunidade(s) encontrada(s).\n", len(opps))
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Category, "category", "c", catalog.AllCategories, "Categoria (ex: \"Meio Ambiente\")")
	cmd.Flags().StringVarP(&opts.State, "state", "s", "", "Sigla do estado (ex: SP)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Texto buscado em título, organização e local")
	cmd.Flags().BoolVar(&featured, "featured", false, "Somente oportunidades em destaque")
	cmd.Flags().BoolVar(&telegram, "telegram", false, "Envia o resultado para o Telegram")
	cmd.Flags().BoolVar(&discord, "discord", false, "Envia o resultado para o Discord")
	return cmd
}

func featuredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Lista as oportunidades em destaque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.NewConsolePrinter(cmd.OutOrStdout()).WriteOpportunities(app.catalog.FetchFeatured(app.ctx))
		},
	}
}

func showCmd() *cobra.Command {
	var withPreview bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Mostra os detalhes de uma oportunidade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opp, ok := app.catalog.FetchByID(app.ctx, args[0])
			if !ok {
				return fmt.Errorf("oportunidade não encontrada: %s", args[0])
			}
			if err := output.NewConsolePrinter(cmd.OutOrStdout()).WriteDetails(opp); err != nil {
				return err
			}
			if !withPreview {
				return nil
			}

			ctx, cancel := context.WithTimeout(app.ctx, previewTimeout)
			defer cancel()
			p, err := app.previews.Fetch(ctx, opp.Website)
			if err != nil {
				app.logger.Warn("preview failed", zap.String("url", opp.Website), zap.Error(err))
				fmt.Fprintln(cmd.OutOrStdout(), "\nPrévia do site indisponível.")
				return nil
			}
			if !p.Empty() {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n", p.Title, p.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withPreview, "preview", false, "Busca título e descrição do site da organização")
	return cmd
}

func statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "Lista os estados brasileiros (IBGE)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.NewConsolePrinter(cmd.OutOrStdout()).WriteStates(app.geo.FetchStates(app.ctx))
		},
	}
}

func citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities <stateID>",
		Short: "Lista os municípios de um estado (IBGE)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stateID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("stateID must be a number: %w", err)
			}
			return output.NewConsolePrinter(cmd.OutOrStdout()).WriteCities(app.geo.FetchCities(app.ctx, stateID))
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Lista as categorias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range catalog.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c.Title)
			}
			return nil
		},
	}
}

func applyCmd() *cobra.Command {
	var f model.VolunteerForm
	cmd := &cobra.Command{
		Use:   "apply <id>",
		Short: "Cadastra-se como voluntário em uma oportunidade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opp, ok := app.catalog.FetchByID(app.ctx, args[0])
			if !ok {
				return fmt.Errorf("oportunidade não encontrada: %s", args[0])
			}

			if errs := form.Validate(f); !errs.OK() {
				fields := make([]string, 0, len(errs))
				for field := range errs {
					fields = append(fields, field)
				}
				slices.Sort(fields)
				for _, field := range fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, errs[field])
				}
				return fmt.Errorf("formulário inválido")
			}

			receipt, err := app.submitter.Submit(app.ctx, opp.ID, f, func(s submit.State) {
				if s == submit.Submitting {
					fmt.Fprintf(cmd.OutOrStdout(), "Enviando cadastro para %q...\n", opp.Title)
				}
			})
			if err != nil {
				return fmt.Errorf("envio interrompido: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ %s\n%s\n\nProtocolo: %s\n", submit.SuccessTitle, submit.SuccessMessage, receipt.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Name, "name", "", "Nome completo")
	cmd.Flags().StringVar(&f.Email, "email", "", "Email")
	cmd.Flags().StringVar(&f.Phone, "phone", "", "Telefone")
	cmd.Flags().StringVar(&f.Area, "area", "", "Área que gostaria de ajudar")
	cmd.Flags().StringVar(&f.Availability, "availability", "", "Disponibilidade")
	cmd.Flags().StringVar(&f.Message, "message", "", "Mensagem")
	return cmd
}

func aboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Sobre o AjudaJá",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "AjudaJá v%s\n\n", catalog.Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Equipe de Desenvolvimento:")
			for _, d := range catalog.Developers() {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%s) %s\n", d.Name, d.Role, d.GitHub)
			}
			stats := catalog.Impact()
			fmt.Fprintf(cmd.OutOrStdout(), "\nImpacto: %s voluntários, %s ONGs, %s pessoas ajudadas\n", stats.Volunteers, stats.Organizations, stats.PeopleHelped)
			fmt.Fprintf(cmd.OutOrStdout(), "\nContato: %s · %s\n", catalog.ContactEmail, catalog.ContactPhone)
			return nil
		},
	}
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abre a interface interativa (padrão)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func runTUI() error {
	return tui.Run(tui.Deps{
		Catalog:   app.catalog,
		Loader:    app.loader,
		Submitter: app.submitter,
		Previews:  app.previews,
		Theme:     app.theme,
		Logger:    app.logger,
	})
}
