package handlers

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"
)

func unixOrZero(t pgtype.Timestamptz) int64 {
	if !t.Valid {
		return 0
	}
	return t.Time.Unix()
}

func unixPtr(t pgtype.Timestamptz) *int64 {
	if !t.Valid {
		return nil
	}
	u := t.Time.Unix()
	return &u
}

func toAccountResponse(a db.Account) responses.AccountResponse {
	return responses.AccountResponse{
		ID:           a.ID.String(),
		Object:       "account",
		Name:         a.Name,
		ContactEmail: a.ContactEmail,
		CreatedAt:    unixOrZero(a.CreatedAt),
		UpdatedAt:    unixOrZero(a.UpdatedAt),
	}
}

func toInvestorResponse(inv db.Investor) responses.InvestorResponse {
	return responses.InvestorResponse{
		ID:                  inv.ID.String(),
		Object:              "investor",
		Email:               inv.Email,
		LegalName:           inv.LegalName,
		EntityType:          inv.EntityType,
		KycStatus:           inv.KycStatus,
		AccreditationStatus: inv.AccreditationStatus,
		PortalActivatedAt:   unixPtr(inv.PortalActivatedAt),
		CreatedAt:           unixOrZero(inv.CreatedAt),
		UpdatedAt:           unixOrZero(inv.UpdatedAt),
	}
}

func toFundResponse(f db.Fund) responses.FundResponse {
	resp := responses.FundResponse{
		ID:          f.ID.String(),
		Object:      "fund",
		Name:        f.Name,
		ManagerName: f.ManagerName,
		Currency:    f.Currency,
		Status:      f.Status,
		CreatedAt:   unixOrZero(f.CreatedAt),
		UpdatedAt:   unixOrZero(f.UpdatedAt),
	}
	if f.VintageYear.Valid {
		year := f.VintageYear.Int32
		resp.VintageYear = &year
	}
	return resp
}

func toCommitmentResponse(cm db.Commitment) responses.CommitmentResponse {
	return responses.CommitmentResponse{
		ID:               cm.ID.String(),
		Object:           "commitment",
		FundID:           cm.FundID.String(),
		InvestorID:       cm.InvestorID.String(),
		CommittedCents:   cm.CommittedCents,
		ContributedCents: cm.ContributedCents,
		DistributedCents: cm.DistributedCents,
		Status:           cm.Status,
		CreatedAt:        unixOrZero(cm.CreatedAt),
		UpdatedAt:        unixOrZero(cm.UpdatedAt),
	}
}

func toCapitalCallResponse(call db.CapitalCall) responses.CapitalCallResponse {
	resp := responses.CapitalCallResponse{
		ID:               call.ID.String(),
		Object:           "capital_call",
		FundID:           call.FundID.String(),
		CallNumber:       call.CallNumber,
		TotalAmountCents: call.TotalAmountCents,
		DueDate:          helpers.FormatDate(call.DueDate),
		Purpose:          call.Purpose.String,
		Status:           call.Status,
		IssuedAt:         unixPtr(call.IssuedAt),
		CreatedAt:        unixOrZero(call.CreatedAt),
		UpdatedAt:        unixOrZero(call.UpdatedAt),
	}
	if call.WireBankName.Valid || call.WireAccountNo.Valid {
		resp.WireInstructions = &responses.WireInstructionsResponse{
			BankName:      call.WireBankName.String,
			BankAddress:   call.WireBankAddress.String,
			AccountName:   call.WireAccountName.String,
			AccountNumber: call.WireAccountNo.String,
			RoutingNumber: call.WireRoutingNo.String,
			SwiftCode:     call.WireSwiftCode.String,
		}
	}
	return resp
}

func toCapitalCallAllocationResponse(a db.CapitalCallAllocation) responses.CapitalCallAllocationResponse {
	return responses.CapitalCallAllocationResponse{
		ID:             a.ID.String(),
		Object:         "capital_call_allocation",
		CapitalCallID:  a.CapitalCallID.String(),
		InvestorID:     a.InvestorID.String(),
		AmountCents:    a.AmountCents,
		Status:         a.Status,
		WireReference:  a.WireReference.String,
		WireReceivedAt: unixPtr(a.WireReceivedAt),
		CreatedAt:      unixOrZero(a.CreatedAt),
		UpdatedAt:      unixOrZero(a.UpdatedAt),
	}
}

func toDistributionResponse(d db.Distribution) responses.DistributionResponse {
	return responses.DistributionResponse{
		ID:                 d.ID.String(),
		Object:             "distribution",
		FundID:             d.FundID.String(),
		DistributionNumber: d.DistributionNumber,
		TotalAmountCents:   d.TotalAmountCents,
		PaymentDate:        helpers.FormatDate(d.PaymentDate),
		Source:             d.Source.String,
		Classification:     d.Classification,
		Recallable:         d.Recallable,
		Status:             d.Status,
		CreatedAt:          unixOrZero(d.CreatedAt),
		UpdatedAt:          unixOrZero(d.UpdatedAt),
	}
}

func toDistributionAllocationResponse(a db.DistributionAllocation) responses.DistributionAllocationResponse {
	return responses.DistributionAllocationResponse{
		ID:               a.ID.String(),
		Object:           "distribution_allocation",
		DistributionID:   a.DistributionID.String(),
		InvestorID:       a.InvestorID.String(),
		AmountCents:      a.AmountCents,
		WithholdingCents: a.WithholdingCents,
		Status:           a.Status,
		PaidAt:           unixPtr(a.PaidAt),
		CreatedAt:        unixOrZero(a.CreatedAt),
	}
}

func toNotificationResponse(n db.Notification) responses.NotificationResponse {
	resp := responses.NotificationResponse{
		ID:                n.ID.String(),
		Object:            "notification",
		Kind:              n.Kind,
		Recipient:         n.Recipient,
		Subject:           n.Subject,
		ProviderMessageID: n.ProviderMessageID.String,
		Status:            n.Status,
		ErrorMessage:      n.ErrorMessage.String,
		CreatedAt:         unixOrZero(n.CreatedAt),
	}
	if n.InvestorID.Valid {
		resp.InvestorID = uuid.UUID(n.InvestorID.Bytes).String()
	}
	return resp
}
