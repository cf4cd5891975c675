package commands

import (
	"context"

	"MyTube/store"
)

// registerUser creates a new account.
func registerUser(ctx context.Context, st *store.Store, c *Console) *commandError {
	username, err := c.ReadLine("Choose username: ")
	if err != nil {
		return &commandError{err, "Failed to read username"}
	}
	res := st.RegisterUser(username)
	c.Printf("%s\n", res.Message)
	return nil
}

// loginUser sets the current session.
func loginUser(ctx context.Context, st *store.Store, c *Console) *commandError {
	username, err := c.ReadLine("Username: ")
	if err != nil {
		return &commandError{err, "Failed to read username"}
	}
	res := st.Login(username)
	c.Printf("%s\n", res.Message)
	return nil
}

// logoutUser clears the current session.
func logoutUser(ctx context.Context, st *store.Store, c *Console) *commandError {
	res := st.Logout()
	c.Printf("%s\n", res.Message)
	return nil
}

// subscribeChannel subscribes the current user to a channel.
func subscribeChannel(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Channel name to subscribe: ")
	if err != nil {
		return &commandError{err, "Failed to read channel name"}
	}
	res := st.Subscribe(name)
	c.Printf("%s\n", res.Message)
	return nil
}

// unsubscribeChannel removes the current user's subscription.
func unsubscribeChannel(ctx context.Context, st *store.Store, c *Console) *commandError {
	name, err := c.ReadLine("Channel name to unsubscribe: ")
	if err != nil {
		return &commandError{err, "Failed to read channel name"}
	}
	res := st.Unsubscribe(name)
	c.Printf("%s\n", res.Message)
	return nil
}

// showHistory lists the current user's watch history.
func showHistory(ctx context.Context, st *store.Store, c *Console) *commandError {
	ids, res := st.History()
	if !res.IsOK() {
		c.Printf("%s\n", res.Message)
		return nil
	}
	if len(ids) == 0 {
		c.Printf("No watch history\n")
		return nil
	}
	c.Printf("%s:\n", res.Message)
	for i, id := range ids {
		line := ""
		if v, ok := st.Video(id); ok {
			line = v.Title
		} else {
			line = "(removed)"
		}
		c.Printf("  [%d] %s (id=%d)\n", i+1, line, id)
	}
	return nil
}
