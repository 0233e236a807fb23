////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Handles the store, consume, and clear subcommands

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

func init() {
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(consumeCmd)
	rootCmd.AddCommand(clearCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store CODE",
	Short: "Persists CODE as the pending invite code",
	Long: `Persists CODE as the pending invite code, overwriting any code ` +
		`stored earlier. The code is kept until it is consumed or cleared.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := initSession()
		if err := s.StoreInviteCode(args[0]); err != nil {
			jww.FATAL.Panicf("Failed to store the invite code: %+v", err)
		}
		jww.INFO.Printf("Stored pending invite code")
	},
}

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Prints the pending invite code and clears it",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := initSession()
		code, exists, err := s.ConsumePendingInviteCode()
		if err != nil {
			jww.FATAL.Panicf("Failed to consume the invite code: %+v", err)
		}
		if !exists {
			fmt.Println("no pending invite code")
			return
		}
		fmt.Println(code)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drops the pending invite code, if any",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := initSession()
		if err := s.ClearStoredInviteCode(); err != nil {
			jww.FATAL.Panicf("Failed to clear the invite code: %+v", err)
		}
		jww.INFO.Printf("Cleared pending invite code")
	},
}
