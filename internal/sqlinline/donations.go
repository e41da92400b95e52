package sqlinline

const QInsertDonation = `--sql 9b79c57c-3615-48a2-9d85-3426d5b3f7eb
insert into donations(id, campaign_id, donor_id, amount_minor, message, anonymous, status, payment_ref, created_at)
values ($1::uuid, $2::uuid, $3::uuid, $4::bigint, $5::text, $6::boolean, $7::text, $8::text, $9::timestamptz);
`

const QListDonationsByCampaign = `--sql 7a08e4f6-cb8a-42c4-bd7f-291d6e913edc
select id, campaign_id, donor_id, amount_minor, message, anonymous, status, payment_ref, created_at
from donations
where campaign_id = $1::uuid
order by created_at asc, id asc;
`
