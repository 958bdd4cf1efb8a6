package types

const (
	EventTypeSubmitProposal   = "submit_proposal"
	EventTypeProposalDeposit  = "proposal_deposit"
	EventTypeProposalVote     = "proposal_vote"
	EventTypeActiveProposal   = "active_proposal"
	EventTypeInactiveProposal = "inactive_proposal"

	AttributeKeyProposalID        = "proposal_id"
	AttributeKeyOption            = "option"
	AttributeKeyVoter             = "voter"
	AttributeKeyVotingPeriodStart = "voting_period_start"
	AttributeKeyProposalResult    = "proposal_result"
	AttributeKeyProposalMessages  = "proposal_messages"

	AttributeValueProposalDropped  = "proposal_dropped"
	AttributeValueProposalPassed   = "proposal_passed"
	AttributeValueProposalRejected = "proposal_rejected"
	AttributeValueProposalFailed   = "proposal_failed"
)
