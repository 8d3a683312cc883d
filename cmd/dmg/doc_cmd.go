package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

type DocCmd struct{}

func (c *DocCmd) Run(cctx *Context, kctx *kong.Context) error {
	return markdownHelp(kctx)
}

// markdownHelp prints the whole command tree's help as markdown.
func markdownHelp(ctx *kong.Context) error {
	w := ctx.Stdout
	if w == nil {
		w = io.Discard
	}

	root := ctx.Model.Node
	fmt.Fprintf(w, "# %s\n\n", ctx.Model.Name)
	if root.Help != "" {
		fmt.Fprintf(w, "%s\n\n", root.Help)
	}

	var globalFlags []*kong.Flag
	for _, flag := range ctx.Model.Flags {
		if !flag.Hidden && flag.Group == nil {
			globalFlags = append(globalFlags, flag)
		}
	}
	if len(globalFlags) > 0 {
		fmt.Fprintf(w, "## Global Flags\n\n")
		for _, flag := range globalFlags {
			printFlag(w, flag)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "## Commands\n\n")
	for _, child := range root.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		cmdPath := ctx.Model.Name + " " + child.Name
		fmt.Fprintf(w, "### `%s`\n\n", cmdPath)
		if child.Help != "" {
			fmt.Fprintf(w, "%s\n\n", child.Help)
		}
		fmt.Fprintf(w, "**Usage:**\n\n```\n%s\n```\n\n", buildUsage(cmdPath, child))
		if len(child.Flags) > 0 {
			fmt.Fprintf(w, "**Flags:**\n\n")
			for _, flag := range child.Flags {
				if !flag.Hidden {
					printFlag(w, flag)
				}
			}
			fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

func printFlag(w io.Writer, flag *kong.Flag) {
	var sig strings.Builder
	if flag.Short != 0 {
		fmt.Fprintf(&sig, "`-%c, --%s`", flag.Short, flag.Name)
	} else {
		fmt.Fprintf(&sig, "`--%s`", flag.Name)
	}
	if !flag.IsBool() {
		fmt.Fprintf(&sig, " _%s_", flag.FormatPlaceHolder())
	}

	fmt.Fprintf(w, "- %s", sig.String())
	if flag.Help != "" {
		fmt.Fprintf(w, " - %s", flag.Help)
	}
	if flag.Default != "" {
		fmt.Fprintf(w, " (default: `%s`)", flag.Default)
	}
	fmt.Fprintf(w, "\n")
}

func buildUsage(cmdPath string, node *kong.Node) string {
	usage := cmdPath
	if len(node.Flags) > 0 {
		usage += " [flags]"
	}
	for _, arg := range node.Positional {
		name := strings.ToUpper(arg.Name)
		if arg.Required {
			usage += fmt.Sprintf(" <%s>", name)
		} else {
			usage += fmt.Sprintf(" [%s]", name)
		}
	}
	return usage
}
