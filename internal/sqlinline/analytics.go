package sqlinline

const QIncrementDailyCounters = `--sql 5c20e9a4-d7f1-4836-92b5-6e48a0c3d17f
insert into analytics_daily (day, visitors, campaigns_created, donations_recorded, donations_failed, amount_minor, created_at, updated_at)
values ($1::date, $2::int, $3::int, $4::int, $5::int, $6::bigint, now(), now())
on conflict (day) do update set
    visitors = analytics_daily.visitors + excluded.visitors,
    campaigns_created = analytics_daily.campaigns_created + excluded.campaigns_created,
    donations_recorded = analytics_daily.donations_recorded + excluded.donations_recorded,
    donations_failed = analytics_daily.donations_failed + excluded.donations_failed,
    amount_minor = analytics_daily.amount_minor + excluded.amount_minor,
    updated_at = now();
`

const QSelectLatestDailySummary = `--sql a9f45b07-31c8-4d6e-85f2-d07c6e19b384
select day, visitors, campaigns_created, donations_recorded, donations_failed, amount_minor, created_at, updated_at
from analytics_daily
order by day desc
limit 1;
`

const QIncrementDonorCountry = `--sql 72e6c3d9-8a50-4f14-b7c8-15f9a2d4e06b
insert into donor_countries (country, donations)
values ($1::text, 1)
on conflict (country) do update set donations = donor_countries.donations + 1;
`

const QTopDonorCountries = `--sql 04b8f6e1-c5a7-4298-9d63-7b12e8d5f4c0
select country, donations
from donor_countries
order by donations desc, country asc
limit $1::int;
`
