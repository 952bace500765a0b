package core

// AddFriend lets owner send money to candidate from now on. Only the
// owner -> candidate edge is added.
func AddFriend(owner *Account, candidate Account) error {
	if candidate.ID == owner.ID {
		return ErrSelfFriend
	}

	if candidate.IsSystemAccount {
		return ErrSystemAccountFriend
	}

	if owner.HasFriend(candidate.ID) {
		return ErrFriendAlreadyAdded
	}

	owner.FriendIDs = append(owner.FriendIDs, candidate.ID)
	return nil
}

// AssertCanSendTo checks the sender's own friend list. The receiver's list
// is never consulted.
func AssertCanSendTo(receiver, sender Account) error {
	if receiver.IsSystemAccount {
		return ErrSystemReceiver
	}

	if !sender.HasFriend(receiver.ID) {
		return ErrNotAFriend
	}

	return nil
}
